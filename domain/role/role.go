package role

import (
	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/xerrors"

	"github.com/x-xyz/gosdk/base/ctx"
	"github.com/x-xyz/gosdk/domain"
)

type Role string

const (
	Admin    Role = "admin"
	Minter   Role = "minter"
	Transfer Role = "transfer"
	Pauser   Role = "pauser"
	Lister   Role = "lister"
	Asset    Role = "asset"
)

// AssetRoles are the roles every asset contract defines
var AssetRoles = []Role{Admin, Minter, Transfer, Pauser}

var AllRoles = []Role{Admin, Minter, Transfer, Pauser, Lister, Asset}

func Parse(s string) (Role, error) {
	for _, r := range AllRoles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", xerrors.Errorf("unknown role %q: %w", s, domain.ErrInvalidArgument)
}

// Hash returns the bytes32 identifier the access control contract uses.
// admin is DEFAULT_ADMIN_ROLE, the others are keccak256("<NAME>_ROLE").
func (r Role) Hash() [32]byte {
	var h [32]byte
	switch r {
	case Admin:
		return h
	case Minter:
		copy(h[:], crypto.Keccak256([]byte("MINTER_ROLE")))
	case Transfer:
		copy(h[:], crypto.Keccak256([]byte("TRANSFER_ROLE")))
	case Pauser:
		copy(h[:], crypto.Keccak256([]byte("PAUSER_ROLE")))
	case Lister:
		copy(h[:], crypto.Keccak256([]byte("LISTER_ROLE")))
	case Asset:
		copy(h[:], crypto.Keccak256([]byte("ASSET_ROLE")))
	}
	return h
}

type UseCase interface {
	GrantRole(c ctx.Ctx, role Role, address domain.Address) error
	// RevokeRole renounces when address is the signer itself, otherwise revokes
	RevokeRole(c ctx.Ctx, role Role, address domain.Address) error
	HasRole(c ctx.Ctx, role Role, address domain.Address) (bool, error)
	GetRoleMembers(c ctx.Ctx, role Role) ([]domain.Address, error)
	GetAllRoleMembers(c ctx.Ctx) (map[Role][]domain.Address, error)
}
