package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/base/validator"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/edition"
	"github.com/x-xyz/gosdk/domain/role"
	"github.com/x-xyz/gosdk/service/chain/contract"
	roleUsecase "github.com/x-xyz/gosdk/stores/role/usecase"
)

const tokensMintedEvent = "TokensMinted"

// newTokenId asks the contract to assign the next token id
var newTokenId = domain.MaxUint256

type EditionUseCaseCfg struct {
	Contract domain.ContractWrapper
	Metadata domain.MetadataUseCase
}

type editionUseCase struct {
	role.UseCase
	contract domain.ContractWrapper
	metadata domain.MetadataUseCase
	assetOps *contract.Erc1155
}

func NewEditionUseCase(cfg *EditionUseCaseCfg) edition.UseCase {
	return &editionUseCase{
		UseCase:  roleUsecase.NewRoleUseCase(&roleUsecase.RoleUseCaseCfg{Contract: cfg.Contract, Roles: role.AssetRoles}),
		contract: cfg.Contract,
		metadata: cfg.Metadata,
		assetOps: contract.NewErc1155(cfg.Contract),
	}
}

func (u *editionUseCase) Address() domain.Address {
	return u.contract.Address()
}

func (u *editionUseCase) AssetOps() domain.AssetOps {
	return u.assetOps
}

func (u *editionUseCase) Get(c bCtx.Ctx, tokenId *big.Int) (*edition.Edition, error) {
	res, err := u.contract.Call(c, "uri", tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("uri failed")
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

	supply, err := u.TotalSupply(c, tokenId)
	if err != nil {
		return nil, err
	}
	return &edition.Edition{Metadata: meta, Supply: supply}, nil
}

func (u *editionUseCase) GetAll(c bCtx.Ctx) ([]*edition.Edition, error) {
	res, err := u.contract.Call(c, "nextTokenIdToMint")
	if err != nil {
		c.WithField("err", err).Error("nextTokenIdToMint failed")
		return nil, err
	}
	next := res[0].(*big.Int)
	editions := []*edition.Edition{}
	for id := big.NewInt(0); id.Cmp(next) < 0; id = new(big.Int).Add(id, domain.Big1) {
		e, err := u.Get(c, id)
		if err != nil {
			return nil, err
		}
		editions = append(editions, e)
	}
	return editions, nil
}

func (u *editionUseCase) TotalSupply(c bCtx.Ctx, tokenId *big.Int) (*big.Int, error) {
	res, err := u.contract.Call(c, "totalSupply", tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("totalSupply failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (u *editionUseCase) BalanceOf(c bCtx.Ctx, owner domain.Address, tokenId *big.Int) (*big.Int, error) {
	res, err := u.contract.Call(c, "balanceOf", owner.ToCommon(), tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"owner":   owner,
			"tokenId": tokenId,
			"err":     err,
		}).Error("balanceOf failed")
		return nil, err
	}
	return res[0].(*big.Int), nil
}

func (u *editionUseCase) Balance(c bCtx.Ctx, tokenId *big.Int) (*big.Int, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.BalanceOf(c, signer, tokenId)
}

func (u *editionUseCase) IsApproved(c bCtx.Ctx, owner, operator domain.Address) (bool, error) {
	return u.assetOps.IsApproved(c, owner, operator, nil)
}

func (u *editionUseCase) SetApproval(c bCtx.Ctx, operator domain.Address, approved bool) error {
	return u.assetOps.SetApproval(c, operator, approved)
}

func (u *editionUseCase) Transfer(c bCtx.Ctx, to domain.Address, tokenId, amount *big.Int) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.TransferFrom(c, signer, to, tokenId, amount)
}

func (u *editionUseCase) TransferFrom(c bCtx.Ctx, from, to domain.Address, tokenId, amount *big.Int) error {
	if _, err := u.contract.SendTransaction(c, "safeTransferFrom", from.ToCommon(), to.ToCommon(), tokenId, amount, []byte{}); err != nil {
		c.WithFields(log.Fields{
			"from":    from,
			"to":      to,
			"tokenId": tokenId,
			"amount":  amount,
			"err":     err,
		}).Error("safeTransferFrom failed")
		return err
	}
	return nil
}

func (u *editionUseCase) TransferBatchFrom(c bCtx.Ctx, from, to domain.Address, tokenIds, amounts []*big.Int) error {
	if len(tokenIds) != len(amounts) {
		return xerrors.Errorf("%d token ids for %d amounts: %w", len(tokenIds), len(amounts), domain.ErrInvalidArgument)
	}
	if _, err := u.contract.SendTransaction(c, "safeBatchTransferFrom", from.ToCommon(), to.ToCommon(), tokenIds, amounts, []byte{}); err != nil {
		c.WithFields(log.Fields{
			"from": from,
			"to":   to,
			"err":  err,
		}).Error("safeBatchTransferFrom failed")
		return err
	}
	return nil
}

func (u *editionUseCase) Mint(c bCtx.Ctx, arg *edition.MintArg) (*edition.Edition, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.MintTo(c, signer, arg)
}

func (u *editionUseCase) MintTo(c bCtx.Ctx, to domain.Address, arg *edition.MintArg) (*edition.Edition, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	if arg == nil {
		return nil, xerrors.Errorf("nil mint arg: %w", domain.ErrInvalidArgument)
	}
	if err := validator.Validate(arg); err != nil {
		return nil, err
	}
	c = bCtx.WithOperation(c, "edition.mintTo")

	uri, err := u.metadata.UploadOrExtractURI(c, arg.Metadata, u.contract.Address(), signer)
	if err != nil {
		c.WithField("err", err).Error("metadata.UploadOrExtractURI failed")
		return nil, err
	}
	return u.mintTo(c, to, newTokenId, uri, arg.Supply)
}

func (u *editionUseCase) MintAdditionalSupply(c bCtx.Ctx, tokenId, amount *big.Int) (*edition.Edition, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.MintAdditionalSupplyTo(c, signer, tokenId, amount)
}

// MintAdditionalSupplyTo mints more of an existing token, the contract keeps its uri
func (u *editionUseCase) MintAdditionalSupplyTo(c bCtx.Ctx, to domain.Address, tokenId, amount *big.Int) (*edition.Edition, error) {
	if _, err := u.signer(); err != nil {
		return nil, err
	}
	c = bCtx.WithOperation(c, "edition.mintAdditionalSupplyTo")
	return u.mintTo(c, to, tokenId, "", amount)
}

func (u *editionUseCase) MintBatch(c bCtx.Ctx, args []*edition.MintArg) ([]*edition.Edition, error) {
	return nil, xerrors.Errorf("edition batch mint: %w", domain.ErrNotImplemented)
}

func (u *editionUseCase) MintBatchTo(c bCtx.Ctx, to domain.Address, args []*edition.MintArg) ([]*edition.Edition, error) {
	return nil, xerrors.Errorf("edition batch mint: %w", domain.ErrNotImplemented)
}

func (u *editionUseCase) Burn(c bCtx.Ctx, tokenId, amount *big.Int) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	if _, err := u.contract.SendTransaction(c, "burn", signer.ToCommon(), tokenId, amount); err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"amount":  amount,
			"err":     err,
		}).Error("burn failed")
		return err
	}
	return nil
}

func (u *editionUseCase) BurnBatch(c bCtx.Ctx, tokenIds, amounts []*big.Int) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	if len(tokenIds) != len(amounts) {
		return xerrors.Errorf("%d token ids for %d amounts: %w", len(tokenIds), len(amounts), domain.ErrInvalidArgument)
	}
	if _, err := u.contract.SendTransaction(c, "burnBatch", signer.ToCommon(), tokenIds, amounts); err != nil {
		c.WithField("err", err).Error("burnBatch failed")
		return err
	}
	return nil
}

func (u *editionUseCase) SetRoyaltyBps(c bCtx.Ctx, recipient domain.Address, bps uint64) error {
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

func (u *editionUseCase) mintTo(c bCtx.Ctx, to domain.Address, tokenId *big.Int, uri string, amount *big.Int) (*edition.Edition, error) {
	receipt, err := u.contract.SendTransaction(c, "mintTo", to.ToCommon(), tokenId, uri, amount)
	if err != nil {
		c.WithFields(log.Fields{
			"to":      to,
			"tokenId": tokenId,
			"amount":  amount,
			"err":     err,
		}).Error("mintTo failed")
		return nil, err
	}
	return u.mintedToken(c, receipt)
}

func (u *editionUseCase) mintedToken(c bCtx.Ctx, receipt *types.Receipt) (*edition.Edition, error) {
	events, err := u.contract.ParseEvents(receipt, tokensMintedEvent)
	if err != nil {
		c.WithField("err", err).Error("contract.ParseEvents failed")
		return nil, err
	}
	return u.Get(c, events[0]["tokenIdMinted"].(*big.Int))
}

func (u *editionUseCase) signer() (domain.Address, error) {
	signer, ok := u.contract.SignerAddress()
	if !ok {
		return "", domain.ErrNoSigner
	}
	return signer, nil
}
