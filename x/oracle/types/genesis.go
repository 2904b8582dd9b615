package types

// GenesisState defines the oracle module's genesis state.
type GenesisState struct {
	Params Params  `json:"params"`
	Prices []Price `json:"prices"`
}

// DefaultGenesis returns the default genesis state.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
		Prices: nil,
	}
}

// Validate performs basic genesis state validation.
func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}

	seen := make(map[string]bool)
	for _, price := range gs.Prices {
		if err := price.Validate(); err != nil {
			return err
		}
		if seen[price.Asset] {
			return ErrInvalidAsset.Wrapf("duplicate price for asset %s", price.Asset)
		}
		seen[price.Asset] = true
	}
	return nil
}
