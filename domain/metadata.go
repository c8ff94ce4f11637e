package domain

import (
	"math/big"

	"github.com/x-xyz/gosdk/base/ctx"
)

type Attribute struct {
	TraitType string      `json:"trait_type,omitempty"`
	Value     interface{} `json:"value"`
}

// Metadata is the json document a token uri points to.
type Metadata struct {
	Id              *big.Int               `json:"id,omitempty"`
	Uri             string                 `json:"-"`
	Name            string                 `json:"name,omitempty"`
	Description     string                 `json:"description,omitempty"`
	Image           string                 `json:"image,omitempty"`
	ExternalUrl     string                 `json:"external_url,omitempty"`
	AnimationUrl    string                 `json:"animation_url,omitempty"`
	BackgroundColor string                 `json:"background_color,omitempty"`
	Properties      map[string]interface{} `json:"properties,omitempty"`
	Attributes      []Attribute            `json:"attributes,omitempty"`

	// ImageData is uploaded on publish and replaced by its uri in Image
	ImageData []byte `json:"-"`
}

type MetadataUseCase interface {
	Resolve(c ctx.Ctx, uri string) (*Metadata, error)
	Publish(c ctx.Ctx, meta *Metadata, contract, publisher Address) (string, error)
	PublishBatch(c ctx.Ctx, metas []*Metadata, contract, publisher Address) ([]string, error)

	// UploadOrExtractURI returns meta.Uri when already set, otherwise publishes meta
	UploadOrExtractURI(c ctx.Ctx, meta *Metadata, contract, publisher Address) (string, error)
}
