package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/mocks"
)

func Test_getIpfsUrl(t *testing.T) {
	type args struct {
		url string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "pinata",
			args: args{
				url: "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			},
			want: "ipfs://QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "pinata dedicated",
			args: args{
				url: "https://womenandweapons.mypinata.cloud/ipfs/QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
			},
			want: "ipfs://QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
		},
		{
			name: "ipfs.io",
			args: args{
				url: "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			},
			want: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
		},
		{
			name: "cloudflare",
			args: args{
				url: "https://cloudflare-ipfs.com/ipfs/QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
			},
			want: "ipfs://QmSddkqicov3HC1Urzv5AKPy2S7KqcnMQR5fjBnrFs2Z7A",
		},
		{
			name: "noop",
			args: args{
				url: "https://some.url",
			},
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getIpfsUrl(tt.args.url); got != tt.want {
				t.Errorf("getIpfsUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}

type WebResourceTestSuite struct {
	suite.Suite
	ctx     bCtx.Ctx
	http    *mocks.WebResourceReaderRepository
	ipfs    *mocks.WebResourceReaderRepository
	dataUri *mocks.WebResourceReaderRepository
	ar      *mocks.WebResourceReaderRepository
	writer  *mocks.WebResourceWriterRepository
	useCase domain.WebResourceUseCase
}

func (s *WebResourceTestSuite) SetupTest() {
	log.Nop()
	s.ctx = bCtx.Background()
	s.http = mocks.NewWebResourceReaderRepository(s.T())
	s.ipfs = mocks.NewWebResourceReaderRepository(s.T())
	s.dataUri = mocks.NewWebResourceReaderRepository(s.T())
	s.ar = mocks.NewWebResourceReaderRepository(s.T())
	s.writer = mocks.NewWebResourceWriterRepository(s.T())
	s.useCase = NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:    s.http,
		IpfsReader:    s.ipfs,
		DataUriReader: s.dataUri,
		ArUriReader:   s.ar,
		Writer:        s.writer,
	})
}

func (s *WebResourceTestSuite) TestDispatch() {
	s.ipfs.On("Get", mock.Anything, "QmHash/1").Return([]byte("ipfs"), nil).Twice()
	s.http.On("Get", mock.Anything, "https://meta.io/1").Return([]byte("http"), nil).Once()
	s.dataUri.On("Get", mock.Anything, "data:,x").Return([]byte("data"), nil).Once()
	s.ar.On("Get", mock.Anything, "ar://tx").Return([]byte("ar"), nil).Once()

	for uri, want := range map[string]string{
		"ipfs://QmHash/1":      "ipfs",
		"ipfs://ipfs/QmHash/1": "ipfs",
		"https://meta.io/1":    "http",
		"data:,x":              "data",
		"ar://tx":              "ar",
	} {
		got, err := s.useCase.Get(s.ctx, uri)
		s.NoError(err, uri)
		s.Equal(want, string(got), uri)
	}
}

func (s *WebResourceTestSuite) TestUnsupportedSchema() {
	_, err := s.useCase.Get(s.ctx, "ftp://host/file")
	s.ErrorIs(err, domain.ErrUnsupportedSchema)
}

func (s *WebResourceTestSuite) TestGatewayFallback() {
	gatewayUrl := "https://ipfs.io/ipfs/QmHash/0.json"
	s.http.On("Get", mock.Anything, gatewayUrl).Return(nil, errors.New("bad gateway")).Once()
	s.ipfs.On("Get", mock.Anything, "QmHash/0.json").Return([]byte(`{"name":"a"}`), nil).Once()

	got, err := s.useCase.GetJson(s.ctx, gatewayUrl)
	s.NoError(err)
	s.Equal(`{"name":"a"}`, string(got))
}

func (s *WebResourceTestSuite) TestNotFoundPassesThrough() {
	s.http.On("Get", mock.Anything, "https://meta.io/404").Return(nil, domain.ErrNotFound).Once()
	_, err := s.useCase.Get(s.ctx, "https://meta.io/404")
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *WebResourceTestSuite) TestGetJsonInvalid() {
	s.http.On("Get", mock.Anything, "https://meta.io/1").Return([]byte("<html>"), nil).Once()
	_, err := s.useCase.GetJson(s.ctx, "https://meta.io/1")
	s.ErrorIs(err, domain.ErrMalformedMetadata)
}

func (s *WebResourceTestSuite) TestStore() {
	s.writer.On("Store", mock.Anything, "a/b.json", []byte("{}"), "application/json").Return("ipfs://QmNew", nil).Once()
	uri, err := s.useCase.Store(s.ctx, "a/b.json", []byte("{}"), "application/json")
	s.NoError(err)
	s.Equal("ipfs://QmNew", uri)

	readOnly := NewWebResourceUseCase(&WebResourceUseCaseCfg{HttpReader: s.http})
	_, err = readOnly.Store(s.ctx, "a/b.json", []byte("{}"), "application/json")
	s.ErrorIs(err, domain.ErrNotImplemented)
}

func TestWebResourceTestSuite(t *testing.T) {
	suite.Run(t, new(WebResourceTestSuite))
}
