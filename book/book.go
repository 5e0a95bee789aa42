/*
   Copyright 2026 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package book is the demonstration payload used throughout the diaglog
// examples and tests: a small domain type that exercises the Describer
// contract, declared error kinds, sentinel errors and stack capture.
package book

import (
	"errors"
	"fmt"
	"time"

	pkgerrors "github.com/pkg/errors"

	"dirpx.dev/diaglog"
	"dirpx.dev/diaglog/apis"
	"dirpx.dev/diaglog/kind"
)

// Publication identifies the physical form of a book.
type Publication string

const (
	Paperback Publication = "paperback"
	Digital   Publication = "digital"
)

// publishedOnLayout is the human-facing date format in field dumps.
const publishedOnLayout = "January 2, 2006"

// KindAlreadyPublished is the error kind of a duplicate publish attempt.
var KindAlreadyPublished = kind.MustParse("book.publish.duplicate")

// ErrAlreadyPublished reports that Publish was called on a book that
// already has a publication date. Compare with errors.Is.
var ErrAlreadyPublished = errors.New("book: already published")

// Book is a single title in a catalog. The zero PublishedOn means the book
// is not published yet.
type Book struct {
	Title       string
	Author      string
	PageCount   int
	Publication Publication
	PublishedOn time.Time
}

// Tagline is the short human-readable form, e.g.
// "'The Stand' by Stephen King at 1153 pages".
func (b Book) Tagline() string {
	return fmt.Sprintf("'%s' by %s at %d pages", b.Title, b.Author, b.PageCount)
}

func (b Book) String() string { return b.Tagline() }

// Describe returns the book's transcript fields in display order.
func (b Book) Describe() []apis.Field {
	published := "unpublished"
	if !b.PublishedOn.IsZero() {
		published = b.PublishedOn.Format(publishedOnLayout)
	}
	return []apis.Field{
		{Name: "title", Value: b.Title},
		{Name: "author", Value: b.Author},
		{Name: "page_count", Value: b.PageCount},
		{Name: "publication", Value: string(b.Publication)},
		{Name: "published_on", Value: published},
	}
}

// Publish stamps the book with the given publication date.
//
// Publishing an already-published book fails with a kinded, stack-carrying
// error chain around ErrAlreadyPublished, which is what the logging and
// classification examples feed on.
func (b *Book) Publish(on time.Time) error {
	if !b.PublishedOn.IsZero() {
		return diaglog.WithKind(pkgerrors.WithStack(ErrAlreadyPublished), KindAlreadyPublished)
	}
	b.PublishedOn = on
	return nil
}
