package usecase

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
)

// memWebResource is a content store keyed by ipfs://<name>
type memWebResource struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func newMemWebResource() *memWebResource {
	return &memWebResource{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *memWebResource) Get(_ bCtx.Ctx, uri string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.objects[uri]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (m *memWebResource) GetJson(c bCtx.Ctx, uri string) ([]byte, error) {
	data, err := m.Get(c, uri)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		return nil, domain.ErrMalformedMetadata
	}
	return data, nil
}

func (m *memWebResource) Store(_ bCtx.Ctx, name string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	uri := fmt.Sprintf("ipfs://%s", name)
	m.objects[uri] = data
	m.types[uri] = contentType
	return uri, nil
}

type MetadataTestSuite struct {
	suite.Suite
	ctx       bCtx.Ctx
	store     *memWebResource
	useCase   domain.MetadataUseCase
	contract  domain.Address
	publisher domain.Address
}

func (s *MetadataTestSuite) SetupTest() {
	log.Nop()
	s.ctx = bCtx.Background()
	s.store = newMemWebResource()
	s.useCase = NewMetadataUseCase(&MetadataUseCaseCfg{WebResource: s.store})
	s.contract = "0x5FbDB2315678afecb367f032d93F642f64180aa3"
	s.publisher = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
}

func (s *MetadataTestSuite) TestPublishResolveRoundTrip() {
	meta := &domain.Metadata{
		Name:        "Rare Bird",
		Description: "a bird",
		ExternalUrl: "https://birds.xyz/1",
		Properties:  map[string]interface{}{"wings": "two"},
		Attributes:  []domain.Attribute{{TraitType: "color", Value: "red"}},
		ImageData:   []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"),
	}

	uri, err := s.useCase.Publish(s.ctx, meta, s.contract, s.publisher)
	s.NoError(err)
	s.True(strings.HasPrefix(uri, "ipfs://"+s.contract.ToLowerStr()+"/"+s.publisher.ToLowerStr()+"/"))
	s.True(strings.HasSuffix(uri, ".json"))
	s.Equal("application/json", s.store.types[uri])

	got, err := s.useCase.Resolve(s.ctx, uri)
	s.NoError(err)
	s.Equal(uri, got.Uri)
	s.Equal(meta.Name, got.Name)
	s.Equal(meta.Description, got.Description)
	s.Equal(meta.ExternalUrl, got.ExternalUrl)
	s.Equal(meta.Properties, got.Properties)
	s.Equal(meta.Attributes, got.Attributes)

	s.True(strings.HasSuffix(got.Image, ".png"))
	s.Equal("image/png", s.store.types[got.Image])
	image, err := s.store.Get(s.ctx, got.Image)
	s.NoError(err)
	s.Equal(meta.ImageData, image)

	// input is left untouched
	s.Empty(meta.Image)
}

func (s *MetadataTestSuite) TestResolveErrors() {
	_, err := s.useCase.Resolve(s.ctx, "ipfs://missing")
	s.ErrorIs(err, domain.ErrNotFound)

	s.store.objects["ipfs://array"] = []byte(`[1,2,3]`)
	_, err = s.useCase.Resolve(s.ctx, "ipfs://array")
	s.ErrorIs(err, domain.ErrMalformedMetadata)

	s.store.objects["ipfs://text"] = []byte(`not json`)
	_, err = s.useCase.Resolve(s.ctx, "ipfs://text")
	s.ErrorIs(err, domain.ErrMalformedMetadata)

	for _, raw := range []string{`null`, ` null `, `42`, `"name"`, `true`} {
		s.store.objects["ipfs://scalar"] = []byte(raw)
		meta, err := s.useCase.Resolve(s.ctx, "ipfs://scalar")
		s.ErrorIs(err, domain.ErrMalformedMetadata, raw)
		s.Nil(meta, raw)
	}
}

func (s *MetadataTestSuite) TestUploadOrExtractURI() {
	uri, err := s.useCase.UploadOrExtractURI(s.ctx, &domain.Metadata{Uri: "ipfs://existing"}, s.contract, s.publisher)
	s.NoError(err)
	s.Equal("ipfs://existing", uri)
	s.Empty(s.store.objects)

	uri, err = s.useCase.UploadOrExtractURI(s.ctx, &domain.Metadata{Name: "new"}, s.contract, s.publisher)
	s.NoError(err)
	s.Contains(s.store.objects, uri)
}

func (s *MetadataTestSuite) TestPublishBatch() {
	uris, err := s.useCase.PublishBatch(s.ctx, []*domain.Metadata{
		{Name: "a"},
		{Name: "b"},
		{Uri: "ipfs://kept"},
	}, s.contract, s.publisher)
	s.NoError(err)
	s.Len(uris, 3)
	s.NotEqual(uris[0], uris[1])
	s.Equal("ipfs://kept", uris[2])

	_, err = s.useCase.Publish(s.ctx, nil, s.contract, s.publisher)
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func TestMetadataTestSuite(t *testing.T) {
	suite.Run(t, new(MetadataTestSuite))
}
