package action

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
)

// OutputRecord is the ordered key/value mapping handed back to the invoking
// host. Order is preserved so repeated runs emit identical layouts.
type OutputRecord struct {
	pairs []OutputPair
}

type OutputPair struct {
	Key   string
	Value string
}

// Set appends a pair, replacing the value in place if the key already exists.
func (r *OutputRecord) Set(key, value string) {
	for i := range r.pairs {
		if r.pairs[i].Key == key {
			r.pairs[i].Value = value
			return
		}
	}
	r.pairs = append(r.pairs, OutputPair{Key: key, Value: value})
}

// Get returns the value for key and whether it was present.
func (r *OutputRecord) Get(key string) (string, bool) {
	for _, p := range r.pairs {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Keys returns the output names in insertion order.
func (r *OutputRecord) Keys() []string {
	keys := make([]string, len(r.pairs))
	for i, p := range r.pairs {
		keys[i] = p.Key
	}
	return keys
}

// Pairs returns a copy of the ordered pairs.
func (r *OutputRecord) Pairs() []OutputPair {
	out := make([]OutputPair, len(r.pairs))
	copy(out, r.pairs)
	return out
}

// WriteTo emits the record as append-only key=value lines. Values containing
// newlines use the key<<DELIMITER heredoc form so line-oriented consumers
// stay unambiguous.
func (r *OutputRecord) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, p := range r.pairs {
		var line string
		if strings.ContainsAny(p.Value, "\r\n") {
			delim := "ghadelimiter_" + uuid.New().String()
			line = fmt.Sprintf("%s<<%s\n%s\n%s\n", p.Key, delim, p.Value, delim)
		} else {
			line = fmt.Sprintf("%s=%s\n", p.Key, p.Value)
		}
		n, err := io.WriteString(w, line)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// AppendFile appends the record to a sink file, creating it if absent.
func (r *OutputRecord) AppendFile(path string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := r.WriteTo(f); err != nil {
		return err
	}
	return f.Sync()
}
