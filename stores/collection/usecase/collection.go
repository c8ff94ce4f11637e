package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/base/validator"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/collection"
	"github.com/x-xyz/gosdk/domain/role"
	"github.com/x-xyz/gosdk/service/chain/contract"
	roleUsecase "github.com/x-xyz/gosdk/stores/role/usecase"
)

const (
	nativeTokensEvent       = "NativeTokens"
	erc20WrappedTokenEvent  = "ERC20WrappedToken"
	erc721WrappedTokenEvent = "ERC721WrappedToken"
)

type CollectionUseCaseCfg struct {
	Contract domain.ContractWrapper
	Metadata domain.MetadataUseCase
}

type collectionUseCase struct {
	role.UseCase
	contract domain.ContractWrapper
	metadata domain.MetadataUseCase
	assetOps *contract.Erc1155
}

func NewCollectionUseCase(cfg *CollectionUseCaseCfg) collection.UseCase {
	return &collectionUseCase{
		UseCase:  roleUsecase.NewRoleUseCase(&roleUsecase.RoleUseCaseCfg{Contract: cfg.Contract, Roles: role.AssetRoles}),
		contract: cfg.Contract,
		metadata: cfg.Metadata,
		assetOps: contract.NewErc1155(cfg.Contract),
	}
}

func (u *collectionUseCase) Address() domain.Address {
	return u.contract.Address()
}

func (u *collectionUseCase) AssetOps() domain.AssetOps {
	return u.assetOps
}

func (u *collectionUseCase) Get(c bCtx.Ctx, tokenId *big.Int) (*collection.Collection, error) {
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

	res, err = u.contract.Call(c, "totalSupply", tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("totalSupply failed")
		return nil, err
	}
	supply := res[0].(*big.Int)

	res, err = u.contract.Call(c, "creator", tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"err":     err,
		}).Error("creator failed")
		return nil, err
	}

	return &collection.Collection{
		Id:       meta.Id,
		Metadata: meta,
		Supply:   supply,
		Creator:  domain.AddressFromCommon(res[0].(common.Address)),
	}, nil
}

func (u *collectionUseCase) GetAll(c bCtx.Ctx) ([]*collection.Collection, error) {
	res, err := u.contract.Call(c, "nextTokenId")
	if err != nil {
		c.WithField("err", err).Error("nextTokenId failed")
		return nil, err
	}
	next := res[0].(*big.Int)
	collections := []*collection.Collection{}
	for id := big.NewInt(0); id.Cmp(next) < 0; id = new(big.Int).Add(id, domain.Big1) {
		col, err := u.Get(c, id)
		if err != nil {
			return nil, err
		}
		collections = append(collections, col)
	}
	return collections, nil
}

func (u *collectionUseCase) BalanceOf(c bCtx.Ctx, owner domain.Address, tokenId *big.Int) (*big.Int, error) {
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

func (u *collectionUseCase) Balance(c bCtx.Ctx, tokenId *big.Int) (*big.Int, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	return u.BalanceOf(c, signer, tokenId)
}

func (u *collectionUseCase) IsApproved(c bCtx.Ctx, owner, operator domain.Address) (bool, error) {
	return u.assetOps.IsApproved(c, owner, operator, nil)
}

func (u *collectionUseCase) SetApproval(c bCtx.Ctx, operator domain.Address, approved bool) error {
	return u.assetOps.SetApproval(c, operator, approved)
}

func (u *collectionUseCase) Transfer(c bCtx.Ctx, to domain.Address, arg *collection.MintArg) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.TransferFrom(c, signer, to, arg)
}

func (u *collectionUseCase) TransferFrom(c bCtx.Ctx, from, to domain.Address, arg *collection.MintArg) error {
	if err := validateMintArgs(arg); err != nil {
		return err
	}
	if _, err := u.contract.SendTransaction(c, "safeTransferFrom", from.ToCommon(), to.ToCommon(), arg.TokenId, arg.Amount, []byte{}); err != nil {
		c.WithFields(log.Fields{
			"from":    from,
			"to":      to,
			"tokenId": arg.TokenId,
			"err":     err,
		}).Error("safeTransferFrom failed")
		return err
	}
	return nil
}

func (u *collectionUseCase) TransferBatchFrom(c bCtx.Ctx, from, to domain.Address, args []*collection.MintArg) error {
	if err := validateMintArgs(args...); err != nil {
		return err
	}
	ids, amounts := splitMintArgs(args)
	if _, err := u.contract.SendTransaction(c, "safeBatchTransferFrom", from.ToCommon(), to.ToCommon(), ids, amounts, []byte{}); err != nil {
		c.WithFields(log.Fields{
			"from": from,
			"to":   to,
			"err":  err,
		}).Error("safeBatchTransferFrom failed")
		return err
	}
	return nil
}

func (u *collectionUseCase) Create(c bCtx.Ctx, meta *domain.Metadata) (*collection.Collection, error) {
	return u.CreateAndMint(c, &collection.CreateArg{Metadata: meta, Supply: big.NewInt(0)})
}

func (u *collectionUseCase) CreateBatch(c bCtx.Ctx, metas []*domain.Metadata) ([]*collection.Collection, error) {
	args := make([]*collection.CreateArg, 0, len(metas))
	for _, meta := range metas {
		args = append(args, &collection.CreateArg{Metadata: meta, Supply: big.NewInt(0)})
	}
	return u.CreateAndMintBatch(c, args)
}

func (u *collectionUseCase) CreateAndMint(c bCtx.Ctx, arg *collection.CreateArg) (*collection.Collection, error) {
	cols, err := u.CreateAndMintBatch(c, []*collection.CreateArg{arg})
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}

// CreateAndMintBatch creates every token in one createNativeTokens transaction,
// ids are read from the NativeTokens event
func (u *collectionUseCase) CreateAndMintBatch(c bCtx.Ctx, args []*collection.CreateArg) ([]*collection.Collection, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	if len(args) == 0 {
		return nil, xerrors.Errorf("nothing to create: %w", domain.ErrInvalidArgument)
	}
	metas := make([]*domain.Metadata, 0, len(args))
	supplies := make([]*big.Int, 0, len(args))
	for _, arg := range args {
		if err := validateCreateArg(arg); err != nil {
			return nil, err
		}
		metas = append(metas, arg.Metadata)
		supplies = append(supplies, supplyOf(arg))
	}
	c = bCtx.WithOperation(c, "collection.createAndMintBatch")

	uris, err := u.metadata.PublishBatch(c, metas, u.contract.Address(), signer)
	if err != nil {
		c.WithField("err", err).Error("metadata.PublishBatch failed")
		return nil, err
	}
	receipt, err := u.contract.SendTransaction(c, "createNativeTokens", signer.ToCommon(), uris, supplies, []byte{})
	if err != nil {
		c.WithFields(log.Fields{
			"count": len(uris),
			"err":   err,
		}).Error("createNativeTokens failed")
		return nil, err
	}

	events, err := u.contract.ParseEvents(receipt, nativeTokensEvent)
	if err != nil {
		c.WithField("err", err).Error("contract.ParseEvents failed")
		return nil, err
	}
	cols := []*collection.Collection{}
	for _, ev := range events {
		for _, id := range ev["tokenIds"].([]*big.Int) {
			col, err := u.Get(c, id)
			if err != nil {
				return nil, err
			}
			cols = append(cols, col)
		}
	}
	return cols, nil
}

// CreateWithErc20 wraps tokenAmount of an erc20 into arg.Supply shares of a new token
func (u *collectionUseCase) CreateWithErc20(c bCtx.Ctx, tokenContract domain.Address, tokenAmount *big.Int, arg *collection.CreateArg) (*collection.Collection, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	if err := validateCreateArg(arg); err != nil {
		return nil, err
	}
	c = bCtx.WithOperation(c, "collection.createWithErc20")

	uri, err := u.metadata.UploadOrExtractURI(c, arg.Metadata, u.contract.Address(), signer)
	if err != nil {
		c.WithField("err", err).Error("metadata.UploadOrExtractURI failed")
		return nil, err
	}
	receipt, err := u.contract.SendTransaction(c, "wrapERC20", tokenContract.ToCommon(), tokenAmount, supplyOf(arg), uri)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenContract": tokenContract,
			"tokenAmount":   tokenAmount,
			"err":           err,
		}).Error("wrapERC20 failed")
		return nil, err
	}
	return u.wrappedToken(c, receipt, erc20WrappedTokenEvent)
}

func (u *collectionUseCase) CreateWithErc721(c bCtx.Ctx, tokenContract domain.Address, tokenId *big.Int, meta *domain.Metadata) (*collection.Collection, error) {
	signer, err := u.signer()
	if err != nil {
		return nil, err
	}
	if meta == nil {
		return nil, xerrors.Errorf("nil metadata: %w", domain.ErrInvalidArgument)
	}
	c = bCtx.WithOperation(c, "collection.createWithErc721")

	uri, err := u.metadata.UploadOrExtractURI(c, meta, u.contract.Address(), signer)
	if err != nil {
		c.WithField("err", err).Error("metadata.UploadOrExtractURI failed")
		return nil, err
	}
	receipt, err := u.contract.SendTransaction(c, "wrapERC721", tokenContract.ToCommon(), tokenId, uri)
	if err != nil {
		c.WithFields(log.Fields{
			"tokenContract": tokenContract,
			"tokenId":       tokenId,
			"err":           err,
		}).Error("wrapERC721 failed")
		return nil, err
	}
	return u.wrappedToken(c, receipt, erc721WrappedTokenEvent)
}

func (u *collectionUseCase) Mint(c bCtx.Ctx, arg *collection.MintArg) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.MintTo(c, signer, arg)
}

func (u *collectionUseCase) MintTo(c bCtx.Ctx, to domain.Address, arg *collection.MintArg) error {
	if err := validateMintArgs(arg); err != nil {
		return err
	}
	if _, err := u.contract.SendTransaction(c, "mint", to.ToCommon(), arg.TokenId, arg.Amount, []byte{}); err != nil {
		c.WithFields(log.Fields{
			"to":      to,
			"tokenId": arg.TokenId,
			"amount":  arg.Amount,
			"err":     err,
		}).Error("mint failed")
		return err
	}
	return nil
}

func (u *collectionUseCase) MintBatch(c bCtx.Ctx, args []*collection.MintArg) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.MintBatchTo(c, signer, args)
}

func (u *collectionUseCase) MintBatchTo(c bCtx.Ctx, to domain.Address, args []*collection.MintArg) error {
	if err := validateMintArgs(args...); err != nil {
		return err
	}
	ids, amounts := splitMintArgs(args)
	if _, err := u.contract.SendTransaction(c, "mintBatch", to.ToCommon(), ids, amounts, []byte{}); err != nil {
		c.WithFields(log.Fields{
			"to":  to,
			"err": err,
		}).Error("mintBatch failed")
		return err
	}
	return nil
}

func (u *collectionUseCase) Burn(c bCtx.Ctx, arg *collection.MintArg) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.BurnFrom(c, signer, arg)
}

func (u *collectionUseCase) BurnFrom(c bCtx.Ctx, account domain.Address, arg *collection.MintArg) error {
	if err := validateMintArgs(arg); err != nil {
		return err
	}
	if _, err := u.contract.SendTransaction(c, "burn", account.ToCommon(), arg.TokenId, arg.Amount); err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"tokenId": arg.TokenId,
			"amount":  arg.Amount,
			"err":     err,
		}).Error("burn failed")
		return err
	}
	return nil
}

func (u *collectionUseCase) BurnBatch(c bCtx.Ctx, args []*collection.MintArg) error {
	signer, err := u.signer()
	if err != nil {
		return err
	}
	return u.BurnBatchFrom(c, signer, args)
}

func (u *collectionUseCase) BurnBatchFrom(c bCtx.Ctx, account domain.Address, args []*collection.MintArg) error {
	if err := validateMintArgs(args...); err != nil {
		return err
	}
	ids, amounts := splitMintArgs(args)
	if _, err := u.contract.SendTransaction(c, "burnBatch", account.ToCommon(), ids, amounts); err != nil {
		c.WithFields(log.Fields{
			"account": account,
			"err":     err,
		}).Error("burnBatch failed")
		return err
	}
	return nil
}

func (u *collectionUseCase) SetRoyaltyBps(c bCtx.Ctx, bps uint64) error {
	if bps > 10000 {
		return xerrors.Errorf("royalty bps %d > 10000: %w", bps, domain.ErrInvalidArgument)
	}
	if _, err := u.contract.SendTransaction(c, "setRoyaltyBps", new(big.Int).SetUint64(bps)); err != nil {
		c.WithFields(log.Fields{
			"bps": bps,
			"err": err,
		}).Error("setRoyaltyBps failed")
		return err
	}
	return nil
}

func (u *collectionUseCase) wrappedToken(c bCtx.Ctx, receipt *types.Receipt, event string) (*collection.Collection, error) {
	events, err := u.contract.ParseEvents(receipt, event)
	if err != nil {
		c.WithFields(log.Fields{
			"event": event,
			"err":   err,
		}).Error("contract.ParseEvents failed")
		return nil, err
	}
	return u.Get(c, events[0]["tokenId"].(*big.Int))
}

func (u *collectionUseCase) signer() (domain.Address, error) {
	signer, ok := u.contract.SignerAddress()
	if !ok {
		return "", domain.ErrNoSigner
	}
	return signer, nil
}

func validateCreateArg(arg *collection.CreateArg) error {
	if arg == nil {
		return xerrors.Errorf("nil create arg: %w", domain.ErrInvalidArgument)
	}
	return validator.Validate(arg)
}

func validateMintArgs(args ...*collection.MintArg) error {
	if len(args) == 0 {
		return xerrors.Errorf("no mint args: %w", domain.ErrInvalidArgument)
	}
	for _, arg := range args {
		if arg == nil {
			return xerrors.Errorf("nil mint arg: %w", domain.ErrInvalidArgument)
		}
		if err := validator.Validate(arg); err != nil {
			return err
		}
	}
	return nil
}

func splitMintArgs(args []*collection.MintArg) ([]*big.Int, []*big.Int) {
	ids := make([]*big.Int, 0, len(args))
	amounts := make([]*big.Int, 0, len(args))
	for _, arg := range args {
		ids = append(ids, arg.TokenId)
		amounts = append(amounts, arg.Amount)
	}
	return ids, amounts
}

func supplyOf(arg *collection.CreateArg) *big.Int {
	if arg.Supply == nil {
		return big.NewInt(0)
	}
	return arg.Supply
}
