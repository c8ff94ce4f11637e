package ens

import (
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/service/chain"
)

// needs a mainnet rpc in ENS_TEST_RPC
type ensSuite struct {
	suite.Suite

	im Resolver
}

func (s *ensSuite) SetupSuite() {
	rpc := os.Getenv("ENS_TEST_RPC")
	if testing.Short() || len(rpc) == 0 {
		s.T().Skip("ENS_TEST_RPC not set")
	}
	client, err := chain.Dial(ctx.Background(), rpc)
	s.Require().NoError(err)
	s.im = New(client)
}

func TestSuite(t *testing.T) {
	suite.Run(t, new(ensSuite))
}

func (s *ensSuite) TestResolve() {
	name := "machibigbrother.eth"
	address := domain.Address("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")

	res, err := s.im.Resolve(ctx.Background(), name)
	if s.NoError(err) {
		s.Equal(address.ToLowerStr(), res.ToLowerStr())
	}
}

func (s *ensSuite) TestReverseResolve() {
	name := "machibigbrother.eth"
	address := domain.Address("0x020cA66C30beC2c4Fe3861a94E4DB4A498A35872")

	res, err := s.im.ReverseResolve(ctx.Background(), address)
	if s.NoError(err) {
		s.Equal(name, res)
	}
}
