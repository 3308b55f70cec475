// Copyright (c) The GoTEE authors. All Rights Reserved.
//
// Use of this source code is governed by the license
// that can be found in the LICENSE file.

package util

import (
	"bytes"
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

const outputLimit = 1024
const flushChr = 0x0a // \n

// ContextLog buffers, per execution context, characters emitted through
// the GoTEE write system call so that concurrent contexts do not interleave
// their output mid-line.
type ContextLog struct {
	sync.Mutex

	// Output is the destination for flushed lines, os.Stdout when nil
	Output io.Writer
	// Term, when set, takes precedence over Output and colors each line
	// according to the execution context
	Term *term.Terminal

	secure    bytes.Buffer
	nonSecure bytes.Buffer
}

// Put buffers a character from the given execution context, flushing
// the buffered line when complete.
func (l *ContextLog) Put(c byte, secure bool) {
	l.Lock()
	defer l.Unlock()

	buf := &l.nonSecure

	if secure {
		buf = &l.secure
	}

	buf.WriteByte(c)

	if c != flushChr && buf.Len() <= outputLimit {
		return
	}

	switch {
	case l.Term != nil:
		color := l.Term.Escape.Red

		if secure {
			color = l.Term.Escape.Green
		}

		l.Term.Write(color)
		l.Term.Write(buf.Bytes())
		l.Term.Write(l.Term.Escape.Reset)
	case l.Output != nil:
		l.Output.Write(buf.Bytes())
	default:
		os.Stdout.Write(buf.Bytes())
	}

	buf.Reset()
}
