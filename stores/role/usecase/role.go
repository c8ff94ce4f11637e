package usecase

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/base/log"
	"github.com/x-xyz/gosdk/domain"
	"github.com/x-xyz/gosdk/domain/role"
)

type RoleUseCaseCfg struct {
	Contract domain.ContractWrapper
	// Roles the contract defines, defaults to role.AssetRoles
	Roles []role.Role
}

type roleUseCase struct {
	contract domain.ContractWrapper
	roles    []role.Role
}

func NewRoleUseCase(cfg *RoleUseCaseCfg) role.UseCase {
	roles := cfg.Roles
	if len(roles) == 0 {
		roles = role.AssetRoles
	}
	return &roleUseCase{
		contract: cfg.Contract,
		roles:    roles,
	}
}

func (u *roleUseCase) GrantRole(c bCtx.Ctx, r role.Role, address domain.Address) error {
	if err := u.checkRole(r); err != nil {
		return err
	}
	if _, err := u.contract.SendTransaction(c, "grantRole", r.Hash(), address.ToCommon()); err != nil {
		c.WithFields(log.Fields{
			"role":    r,
			"address": address,
			"err":     err,
		}).Error("grantRole failed")
		return err
	}
	return nil
}

func (u *roleUseCase) RevokeRole(c bCtx.Ctx, r role.Role, address domain.Address) error {
	if err := u.checkRole(r); err != nil {
		return err
	}
	method := "revokeRole"
	if signer, ok := u.contract.SignerAddress(); ok && signer.Equals(address) {
		method = "renounceRole"
	}
	if _, err := u.contract.SendTransaction(c, method, r.Hash(), address.ToCommon()); err != nil {
		c.WithFields(log.Fields{
			"method":  method,
			"role":    r,
			"address": address,
			"err":     err,
		}).Error("failed to revoke role")
		return err
	}
	return nil
}

func (u *roleUseCase) HasRole(c bCtx.Ctx, r role.Role, address domain.Address) (bool, error) {
	if err := u.checkRole(r); err != nil {
		return false, err
	}
	res, err := u.contract.Call(c, "hasRole", r.Hash(), address.ToCommon())
	if err != nil {
		c.WithFields(log.Fields{
			"role": r,
			"err":  err,
		}).Error("hasRole failed")
		return false, err
	}
	return res[0].(bool), nil
}

func (u *roleUseCase) GetRoleMembers(c bCtx.Ctx, r role.Role) ([]domain.Address, error) {
	if err := u.checkRole(r); err != nil {
		return nil, err
	}
	res, err := u.contract.Call(c, "getRoleMemberCount", r.Hash())
	if err != nil {
		c.WithFields(log.Fields{
			"role": r,
			"err":  err,
		}).Error("getRoleMemberCount failed")
		return nil, err
	}
	count := res[0].(*big.Int).Int64()

	members := make([]domain.Address, 0, count)
	for i := int64(0); i < count; i++ {
		res, err := u.contract.Call(c, "getRoleMember", r.Hash(), big.NewInt(i))
		if err != nil {
			c.WithFields(log.Fields{
				"role":  r,
				"index": i,
				"err":   err,
			}).Error("getRoleMember failed")
			return nil, err
		}
		members = append(members, domain.AddressFromCommon(res[0].(common.Address)))
	}
	return members, nil
}

func (u *roleUseCase) GetAllRoleMembers(c bCtx.Ctx) (map[role.Role][]domain.Address, error) {
	res := make(map[role.Role][]domain.Address, len(u.roles))
	for _, r := range u.roles {
		members, err := u.GetRoleMembers(c, r)
		if err != nil {
			return nil, err
		}
		res[r] = members
	}
	return res, nil
}

func (u *roleUseCase) checkRole(r role.Role) error {
	for _, known := range u.roles {
		if known == r {
			return nil
		}
	}
	return xerrors.Errorf("contract does not define role %q: %w", r, domain.ErrInvalidArgument)
}
