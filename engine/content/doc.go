/*
Package content holds the view of a text content node as seen by the
layout engine.

A TextContent is owned by the content tree. The layout of a text node holds
a non-owning reference for the duration of one layout pass.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package content
