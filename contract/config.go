package contract

import "quadra_dao/sdk"

// saveContractConfig persists the deploy-time config singleton.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(contractConfigKey(), string(EncodeContractConfig(cfg)))
}

// loadContractConfig aborts when the contract was never initialized.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(contractConfigKey())
	if ptr == nil || *ptr == "" {
		sdk.Abort("contract not initialized")
	}
	cfg, err := DecodeContractConfig([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode contract config")
	}
	return cfg
}

func isContractInitialized() bool {
	ptr := sdk.StateGetObject(contractConfigKey())
	return ptr != nil && *ptr != ""
}

// requireOwner gates deploy-level operations on the stored owner.
func requireOwner(caller sdk.Address) {
	cfg := loadContractConfig()
	if cfg.Owner != caller {
		fail(errUnauthorized, "caller is not the contract owner")
	}
}

// saveGovernanceParams persists the governance knob singleton.
func saveGovernanceParams(p *GovernanceParams) {
	sdk.StateSetObject(govParamsKey(), string(EncodeGovernanceParams(p)))
}

// loadGovernanceParams falls back to the compiled defaults pre-init.
func loadGovernanceParams() *GovernanceParams {
	ptr := sdk.StateGetObject(govParamsKey())
	if ptr == nil || *ptr == "" {
		return &GovernanceParams{
			VotingDelay:       FallbackVotingDelay,
			VotingPeriod:      FallbackVotingPeriod,
			ProposalThreshold: FallbackProposalThreshold,
			QuorumPercent:     fallbackQuorumPercent,
			TimelockDelay:     fallbackTimelockDelay,
		}
	}
	p, err := DecodeGovernanceParams([]byte(*ptr))
	if err != nil {
		sdk.Abort("failed to decode governance params")
	}
	return p
}
