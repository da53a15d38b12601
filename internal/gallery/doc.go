// Package gallery owns the project image viewer shared by every gallery
// presentation on the landing page.
//
// A Controller is a small state holder: it is either closed or open on one
// project at one image index. Presentations (the modal overlay, inline work
// cards, the terminal preview) differ only in their Target descriptor and the
// Renderer that receives each View, so the navigation rules live in exactly
// one place.
package gallery
