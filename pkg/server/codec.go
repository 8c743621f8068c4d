package server

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/namecmp/pkg/config"
	"github.com/sugawarayuuta/sonnet"
	"github.com/vmihailenco/msgpack/v5"
)

// ErrBadFrame marks a frame that could not be decoded but did not break the
// stream. The server answers it with an error and keeps reading.
var ErrBadFrame = errors.New("server: bad frame")

// Codec frames requests and responses on the IPC stream.
type Codec interface {
	Decode(v any) error
	Encode(v any) error
}

// NewCodec returns the codec registered under name.
func NewCodec(name string, r io.Reader, w io.Writer) (Codec, error) {
	switch name {
	case config.CodecMsgpack:
		return &msgpackCodec{dec: msgpack.NewDecoder(r), enc: msgpack.NewEncoder(w)}, nil
	case config.CodecJSON:
		return &jsonCodec{reader: bufio.NewReader(r), w: w}, nil
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}

type msgpackCodec struct {
	dec *msgpack.Decoder
	enc *msgpack.Encoder
}

// Decode reads exactly one value off the stream before decoding it into v, so
// a value of the wrong shape is a bad frame and the next one is still aligned.
func (c *msgpackCodec) Decode(v any) error {
	raw, err := c.dec.DecodeRaw()
	if err != nil {
		return err
	}
	if uerr := msgpack.Unmarshal(raw, v); uerr != nil {
		return fmt.Errorf("%w: %v", ErrBadFrame, uerr)
	}
	return nil
}

func (c *msgpackCodec) Encode(v any) error {
	return c.enc.Encode(v)
}

// jsonCodec reads one JSON object per line. Blank lines are skipped.
type jsonCodec struct {
	reader *bufio.Reader
	w      io.Writer
}

func (c *jsonCodec) Decode(v any) error {
	for {
		line, err := c.reader.ReadBytes('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			if err != nil {
				return io.EOF
			}
			continue
		}
		if uerr := sonnet.Unmarshal(line, v); uerr != nil {
			return fmt.Errorf("%w: %v", ErrBadFrame, uerr)
		}
		return nil
	}
}

func (c *jsonCodec) Encode(v any) error {
	data, err := sonnet.Marshal(v)
	if err != nil {
		return err
	}
	_, err = c.w.Write(append(data, '\n'))
	return err
}
