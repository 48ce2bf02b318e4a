package host

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dshills/smartkey/internal/document"
	"github.com/dshills/smartkey/internal/keychain"
)

// Control characters understood by RunBatch.
const (
	keyBackspace = '\b'
	keyDelete    = 0x7f
)

// RunBatch types every character read from r into doc through chain, as
// if entered at the keyboard, then writes the resulting text to w.
// Carriage returns are dropped; backspace and DEL delete left.
func RunBatch(ctx context.Context, r io.Reader, w io.Writer, doc *document.Document, chain *keychain.Chain) error {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("reading keystrokes: %w", err)
		}

		switch ch {
		case '\r':
			continue
		case keyBackspace, keyDelete:
			doc.DeleteLeft(1)
			continue
		}

		key := string(ch)
		if res := chain.Dispatch(keychain.Keystroke{Key: key}, doc); !res.Cancel {
			doc.Insert(key)
		}
	}

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
