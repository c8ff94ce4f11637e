package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/nft"
	"github.com/x-xyz/gosdk/domain/role"
	"github.com/x-xyz/gosdk/service/chain/contract"
	roleUsecase "github.com/x-xyz/gosdk/stores/role/usecase"
)

const tokensMintedEvent = "TokensMinted"

type NftUseCaseCfg struct {
	Contract domain.ContractWrapper
	Metadata domain.MetadataUseCase
}

type nftUseCase struct {
	role.UseCase
	contract domain.ContractWrapper
	metadata domain.MetadataUseCase
	assetOps *contract.Erc721
}

func NewNftUseCase(cfg *NftUseCaseCfg) nft.UseCase {
	return &nftUseCase{
		UseCase:  roleUsecase.NewRoleUseCase(&roleUsecase.RoleUseCaseCfg{Contract: cfg.Contract, Roles: role.AssetRoles}),
		contract: cfg.Contract,
		metadata: cfg.Metadata,
		assetOps: contract.NewErc721(cfg.Contract),
	}
}

func (u *nftUseCase) Address() domain.Address {
	return u.contract.Address()
}

func (u *nftUseCase) AssetOps() domain.AssetOps {
	return u.assetOps
}

func (u *nftUseCase) Get(c bCtx.Ctx, tokenId *big.Int) (*domain.Metadata, error) {
	res, err := u.contract.Call(c, "tokenURI", tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("tokenURI failed")
		return nil, err
	}
	meta, err := u.metadata.Resolve(c, res[0].(string))
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("metadata.Resolve failed")
		return nil, err
	}
	meta.Id = new(big.Int).Set(tokenId)
	return meta, nil
}

func (u *nftUseCase) GetAll(c bCtx.Ctx) ([]*domain.Metadata, error) {
	res, err := u.contract.Call(c, "nextTokenIdToMint")
	if err != nil {
		c.WithField("err", err).Error("nextTokenIdToMint failed")
		return nil, err
	}
	next := res[0].(*big.Int)
	metas := []*domain.Metadata{}
	for id := big.NewInt(0); id.Cmp(next) < 0; id = new(big.Int).Add(id, domain.Big1) {
		meta, err := u.Get(c, id)
		if err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

// GetOwned lists tokens of owner, or of the signer when owner is empty
func (u *nftUseCase) GetOwned(c bCtx.Ctx, owner domain.Address) ([]*domain.Metadata, error) {
	if owner.IsEmpty() {
		signer, err := u.signer()
		if err != nil {
			return nil, err
		}
		owner = signer
	}
	balance, err := u.BalanceOf(c, owner)
	if err != nil {
		return nil, err
	}
	metas := make([]*domain.Metadata, 0, balance.Int64())
	for i := int64(0); i < balance.Int64(); i++ {
		res, err := u.contract.Call(c, "tokenOfOwnerByIndex", owner.ToCommon(), big.NewInt(i))
		if err != nil {
			c.WithFields(log.Fields{
				"owner": owner,
				"index": i,
				"err":   err,
			}).Error("tokenOfOwnerByIndex failed")
			return nil, err
		}
		meta, err := u.Get(c, res[0].(*big.Int))
		if err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

func (u *nftUseCase) OwnerOf(c bCtx.Ctx, tokenId *big.Int) (domain.Address, error) {
	res, err := u.contract.Call(c, "ownerOf", tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("ownerOf failed")
		return "", err
	}
	return domain.AddressFromCommon(res[0].(common.Address)), nil
}

func (u *nftUseCase) TotalSupply(c bCtx.Ctx) (*big.Int, error) {
	res, err := u.contract.Call(c, "totalSupply")
	if err != nil {
		c.WithField("err", err).Error("totalSupply failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (u *nftUseCase) BalanceOf(c bCtx.Ctx, owner domain.Address) (*big.Int, error) {
	res, err := u.contract.Call(c, "balanceOf", owner.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{
			"owner": owner,
			"err":   err,
		}).Error("balanceOf failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (u *nftUseCase) Balance(c bCtx.Ctx) (*big.Int, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.BalanceOf(c, signer)
}

func (u *nftUseCase) IsApproved(c bCtx.Ctx, owner, operator domain.Address) (bool, error) {
	return u.assetOps.IsApproved(c, owner, operator, nil)
}

func (u *nftUseCase) SetApproval(c bCtx.Ctx, operator domain.Address, approved bool) error {
	return u.assetOps.SetApproval(c, operator, approved)
}

func (u *nftUseCase) Transfer(c bCtx.Ctx, to domain.Address, tokenId *big.Int) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.TransferFrom(c, signer, to, tokenId)
}

func (u *nftUseCase) TransferFrom(c bCtx.Ctx, from, to domain.Address, tokenId *big.Int) error {
	if _, err := u.contract.SendTransaction(c, "safeTransferFrom", from.ToCommon(), to.ToCommon(), tokenId); err != nil {
		c.WithFields(log.Fields{
			"from":    from,
			"to":      to,
			"tokenId": tokenId,
			"err":     err,
		}).Error("safeTransferFrom failed")
		return err
	}
	return nil
}

func (u *nftUseCase) Mint(c bCtx.Ctx, meta *domain.Metadata) (*domain.Metadata, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.MintTo(c, signer, meta)
}

func (u *nftUseCase) MintTo(c bCtx.Ctx, to domain.Address, meta *domain.Metadata) (*domain.Metadata, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	c = bCtx.WithOperation(c, "nft.mintTo")

	uri, err := u.metadata.UploadOrExtractURI(c, meta, u.contract.Address(), signer)
	if err != nil {
		c.WithField("err", err).Error("metadata.UploadOrExtractURI failed")
		return nil, err
	}
	receipt, err := u.contract.SendTransaction(c, "mintTo", to.ToCommon(), uri)
	if err != nil {
		c.WithFields(log.Fields{
			"to":  to,
			"err": err,
		}).Error("mintTo failed")
		return nil, err
	}
	metas, err := u.mintedTokens(c, receipt)
	if err != nil {
		return nil, err
	}
	return metas[0], nil
}

func (u *nftUseCase) MintBatch(c bCtx.Ctx, metas []*domain.Metadata) ([]*domain.Metadata, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.MintBatchTo(c, signer, metas)
}

// MintBatchTo mints every token in one multicall transaction
func (u *nftUseCase) MintBatchTo(c bCtx.Ctx, to domain.Address, metas []*domain.Metadata) ([]*domain.Metadata, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	if len(metas) == 0 {
		return nil, xerrors.Errorf("nothing to mint: %w", domain.ErrInvalidArgument)
	}
	c = bCtx.WithOperation(c, "nft.mintBatchTo")

	uris, err := u.metadata.PublishBatch(c, metas, u.contract.Address(), signer)
	if err != nil {
		c.WithField("err", err).Error("metadata.PublishBatch failed")
		return nil, err
	}
	calls := make([][]byte, 0, len(uris))
	for _, uri := range uris {
		data, err := u.contract.Encode("mintTo", to.ToCommon(), uri)
		if err != nil {
			c.WithField("err", err).Error("contract.Encode failed")
			return nil, err
		}
		calls = append(calls, data)
	}
	receipt, err := u.contract.MultiCall(c, calls)
	if err != nil {
		c.WithFields(log.Fields{
			"to":    to,
			"count": len(calls),
			"err":   err,
		}).Error("multicall mintTo failed")
		return nil, err
	}
	return u.mintedTokens(c, receipt)
}

func (u *nftUseCase) Burn(c bCtx.Ctx, tokenId *big.Int) error {
	if _, err := u.contract.SendTransaction(c, "burn", tokenId); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("burn failed")
		return err
	}
	return nil
}

func (u *nftUseCase) SetRoyaltyBps(c bCtx.Ctx, recipient domain.Address, bps uint64) error {
	if bps > 10000 {
		return xerrors.Errorf("royalty bps %d > 10000: %w", bps, domain.ErrInvalidArgument)
	}
	if _, err := u.contract.SendTransaction(c, "setDefaultRoyaltyInfo", recipient.ToCommon(), new(big.Int).SetUint64(bps)); err != nil {
		c.WithFields(log.Fields{
			"recipient": recipient,
			"bps":       bps,
			"err":       err,
		}).Error("setDefaultRoyaltyInfo failed")
		return err
	}
	return nil
}

// mintedTokens reads the TokensMinted events of receipt and fetches every minted token
func (u *nftUseCase) mintedTokens(c bCtx.Ctx, receipt *types.Receipt) ([]*domain.Metadata, error) {
	events, err := u.contract.ParseEvents(receipt, tokensMintedEvent)
	if err != nil {
		c.WithField("err", err).Error("contract.ParseEvents failed")
		return nil, err
	}
	metas := make([]*domain.Metadata, 0, len(events))
	for _, ev := range events {
		meta, err := u.Get(c, ev["tokenIdMinted"].(*big.Int))
		if err != nil {
			return nil, err
		}
		metas = append(metas, meta)
	}
	return metas, nil
}

func (u *nftUseCase) signer() (domain.Address, error) {
	signer, ok := u.contract.SignerAddress()
	if !ok {
		return "", domain.ErrNoSigner
	}
	return signer, nil
}
