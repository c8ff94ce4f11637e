package pinata

import (
	"errors"
	"io"

	"github.com/x-xyz/gosdk/base/ctx"
)

var ErrRequestFailed = errors.New("pinata request failed")

// Metadata is attached to a pin. Key values only hold strings, bools and numbers.
type Metadata struct {
	Name      string                 `json:"name,omitempty"`
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type pinOptions struct {
	CidVersion int `json:"cidVersion"`
}

type pinRequest struct {
	Metadata *Metadata   `json:"pinataMetadata,omitempty"`
	Options  *pinOptions `json:"pinataOptions,omitempty"`
	Content  interface{} `json:"pinataContent"`
}

type PinOption func(*pinRequest)

func WithName(name string) PinOption {
	return func(r *pinRequest) {
		r.metadata().Name = name
	}
}

func WithKeyValue(key string, value interface{}) PinOption {
	return func(r *pinRequest) {
		m := r.metadata()
		if m.KeyValues == nil {
			m.KeyValues = make(map[string]interface{})
		}
		m.KeyValues[key] = value
	}
}

// WithCidV1 pins under a base32 v1 cid instead of the default Qm... v0 cid
func WithCidV1() PinOption {
	return func(r *pinRequest) {
		r.Options = &pinOptions{CidVersion: 1}
	}
}

func (r *pinRequest) metadata() *Metadata {
	if r.Metadata == nil {
		r.Metadata = &Metadata{}
	}
	return r.Metadata
}

func newPinRequest(opts []PinOption) *pinRequest {
	r := &pinRequest{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Service pins content on ipfs through pinata and returns the cid
type Service interface {
	Pin(c ctx.Ctx, file io.Reader, filename string, opts ...PinOption) (string, error)
	PinJson(c ctx.Ctx, value interface{}, opts ...PinOption) (string, error)
}
