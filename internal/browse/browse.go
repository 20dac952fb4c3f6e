// Package browse provides a stub-friendly interface for opening URLs.
package browse

import "github.com/pkg/browser"

// URLOpener is the interface for launching the default web handler on a URL.
// Opening is fire-and-forget; callers treat failure as indistinguishable
// from success.
type URLOpener interface {
	Open(url string) error
}

// BrowserOpener is the production URLOpener using the OS default browser.
type BrowserOpener struct{}

// NewBrowserOpener creates a new BrowserOpener.
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{}
}

func (b *BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}
