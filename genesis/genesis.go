// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package genesis

import (
	"math/big"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/polkadotters/SubAuction/script/nft"
	"github.com/polkadotters/SubAuction/state"
	"github.com/polkadotters/SubAuction/sub"
)

// Alloc describes the initial chain state: funded accounts and the token
// classes and tokens minted before the first block.
type Alloc struct {
	Name     string         `yaml:"name"`
	Accounts []AccountAlloc `yaml:"accounts"`
	Classes  []ClassAlloc   `yaml:"classes"`
}

type AccountAlloc struct {
	Address string `yaml:"address"`
	Balance string `yaml:"balance"`
}

type ClassAlloc struct {
	Owner    string       `yaml:"owner"`
	Metadata string       `yaml:"metadata"`
	Tokens   []TokenAlloc `yaml:"tokens"`
}

type TokenAlloc struct {
	Owner    string `yaml:"owner"`
	Metadata string `yaml:"metadata"`
}

// LoadAlloc reads an allocation file.
func LoadAlloc(path string) (*Alloc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read genesis file")
	}
	var alloc Alloc
	if err := yaml.Unmarshal(data, &alloc); err != nil {
		return nil, errors.Wrap(err, "parse genesis file")
	}
	return &alloc, nil
}

// Build applies the allocation to a fresh state and commits it. The nft
// module must be started before Build is called.
func Build(stateCreator *state.Creator, alloc *Alloc) (sub.Bytes32, error) {
	st, err := stateCreator.NewState()
	if err != nil {
		return sub.Bytes32{}, err
	}

	for _, acc := range alloc.Accounts {
		addr, err := sub.ParseAddress(acc.Address)
		if err != nil {
			return sub.Bytes32{}, errors.Wrapf(err, "genesis account %s", acc.Address)
		}
		balance, ok := new(big.Int).SetString(acc.Balance, 10)
		if !ok {
			return sub.Bytes32{}, errors.Errorf("bad genesis balance %s", acc.Balance)
		}
		st.SetBalance(addr, balance)
	}

	n := nft.GetNFTGlobInst()
	if n == nil {
		return sub.Bytes32{}, errors.New("nft module not started")
	}
	for _, cls := range alloc.Classes {
		owner, err := sub.ParseAddress(cls.Owner)
		if err != nil {
			return sub.Bytes32{}, errors.Wrapf(err, "genesis class owner %s", cls.Owner)
		}
		classID, err := n.CreateClass(st, owner, []byte(cls.Metadata))
		if err != nil {
			return sub.Bytes32{}, err
		}
		for _, tok := range cls.Tokens {
			tokOwner, err := sub.ParseAddress(tok.Owner)
			if err != nil {
				return sub.Bytes32{}, errors.Wrapf(err, "genesis token owner %s", tok.Owner)
			}
			token, err := n.MintToken(st, owner, classID, []byte(tok.Metadata))
			if err != nil {
				return sub.Bytes32{}, err
			}
			if tokOwner != owner {
				if err := n.TransferToken(st, owner, tokOwner, token); err != nil {
					return sub.Bytes32{}, err
				}
			}
		}
	}

	if err := st.Err(); err != nil {
		return sub.Bytes32{}, err
	}
	root, err := st.Stage().Commit()
	if err != nil {
		return sub.Bytes32{}, err
	}
	return root, nil
}
