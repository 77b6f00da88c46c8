/*
Package arabic implements contextual letter joining for Arabic script.

Letters are replaced by their isolated, initial, medial or final
presentation forms (Unicode block Arabic Presentation Forms-B), depending
on the joining behaviour of the neighbouring letters. Lam followed by alef
is replaced by the mandatory lam-alef ligature. Text without Arabic letters
passes unchanged.

Shaping is done on the logical order of characters, i.e., before any
re-ordering for right-to-left display.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package arabic
