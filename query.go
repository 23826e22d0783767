package bookdeal

import (
	"errors"
)

var (
	// ErrNoContract is returned by CollectOne when nothing matched.
	ErrNoContract = errors.New("no matching contract")
	// ErrTooManyResults is returned when CollectOne is called but matched many contracts
	ErrTooManyResults = errors.New("too many result for CollectOne")
)

// ContractQuery selects contracts from a registry. The zero mods query
// matches every contract.
type ContractQuery struct {
	registry *Registry
	mods     []ContractMod
}

func newContractQuery(registry *Registry) ContractQuery {
	return ContractQuery{
		registry: registry,
		mods:     []ContractMod{},
	}
}

func (query ContractQuery) Where(mods ...ContractMod) ContractQuery {
	// Derived queries never share a backing array.
	next := make([]ContractMod, 0, len(query.mods)+len(mods))
	next = append(next, query.mods...)
	next = append(next, mods...)
	query.mods = next

	return query
}

// =================
// Finishers
// =================

// Collect returns the matching contracts in the order they were registered.
func (query ContractQuery) Collect() []*Contract {
	return HasMany(query.mods, query.registry.contracts, func(mods []ContractMod, c *Contract) bool {
		return applyMods(c, mods)
	})
}

func (query ContractQuery) CollectOne() (*Contract, error) {
	contracts := query.Collect()

	if len(contracts) == 0 {
		return nil, ErrNoContract
	} else if len(contracts) > 1 {
		return nil, ErrTooManyResults
	}

	return contracts[0], nil
}

func (query ContractQuery) Exists() bool {
	return HasAny(query.mods, query.registry.contracts, func(mods []ContractMod, c *Contract) bool {
		return applyMods(c, mods)
	})
}
