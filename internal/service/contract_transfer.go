package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"

	"stellar-wallet-core/internal/core/domain"
	"stellar-wallet-core/pkg/apperror"
	"stellar-wallet-core/pkg/logger"

	"github.com/shopspring/decimal"
	"github.com/stellar/go/strkey"
	"github.com/stellar/go/txnbuild"
	"github.com/stellar/go/xdr"
)

const transferFunction = "transfer"

var (
	errAmountOverflowsI128 = errors.New("amount does not fit in i128")
	maxUint64              = new(big.Int).SetUint64(math.MaxUint64)
)

// isContractTransfer reports whether intent needs a token contract call: the
// asset is a contract token or the destination is a contract.
func isContractTransfer(intent domain.TransactionIntent) bool {
	return intent.Asset.Kind == domain.AssetKindContract || domain.IsValidContractID(intent.Destination)
}

// buildContractTransfer builds transfer(from, to, amount) against the token
// contract, simulates it, and returns the envelope with footprint, auth and
// resource fee applied. Contract addresses cannot carry a mux id, so an M
// destination is paid at its base account.
func (s *TransactionBuilderService) buildContractTransfer(ctx context.Context, intent domain.TransactionIntent, sourceBase string) (*domain.UnsignedEnvelope, error) {
	if s.simulator == nil {
		return nil, apperror.ErrUnsupportedAsset()
	}

	dest := intent.Destination
	if !domain.IsValidAccountAddress(dest) && !domain.IsValidContractID(dest) {
		return nil, apperror.ErrInvalidDestination()
	}
	if domain.IsMuxedAddress(dest) {
		base, err := domain.BaseAccount(dest)
		if err != nil {
			return nil, apperror.ErrInvalidDestination()
		}
		s.log.Debug().Str("destination", logger.ShortAddress(base)).Msg("muxed destination reduced to base account for contract transfer")
		dest = base
	}
	if dest == sourceBase {
		return nil, apperror.ErrDestinationIsSource()
	}

	contractID, err := tokenContract(intent.Asset, s.cfg.NetworkPassphrase)
	if err != nil {
		return nil, err
	}
	if err := validateAmount(intent.Amount, intent.Asset); err != nil {
		return nil, err
	}

	source, err := s.loadSource(ctx, sourceBase)
	if err != nil {
		return nil, err
	}
	// Contract token balances live in contract storage; simulation rejects
	// an overdraft for them.
	if intent.Asset.IsClassic() {
		balance, ok := source.Balance(intent.Asset)
		if !ok || intent.Amount.GreaterThan(balance.Available) {
			return nil, apperror.ErrInsufficientBalance()
		}
	}

	baseFee, err := validateFee(intent.Fee, 1)
	if err != nil {
		return nil, err
	}
	if intent.TimeoutSeconds <= 0 {
		return nil, apperror.ErrInvalidTimeout()
	}
	if intent.Memo != "" {
		return nil, apperror.Validation("memo is not supported for contract transfers")
	}

	op, err := transferOperation(contractID, sourceBase, dest, intent.Amount, intent.Asset.Decimals())
	if err != nil {
		return nil, err
	}
	draft, err := s.assemble(source, baseFee, intent.TimeoutSeconds, nil, op)
	if err != nil {
		return nil, err
	}

	sim, err := s.simulator.SimulateTransaction(ctx, draft.XDR)
	if err != nil {
		return nil, apperror.ErrNetworkUnavailable(err)
	}
	if sim.Failed() {
		s.log.Warn().Str("contract", contractID).Str("error", sim.Error).Msg("contract transfer simulation failed")
		return nil, apperror.ErrSimulationFailed(sim.Error)
	}
	if err := applySimulation(op, sim); err != nil {
		return nil, apperror.ErrBuildFailed(err)
	}

	if sim.MinResourceFee < 0 {
		return nil, apperror.ErrBuildFailed(fmt.Errorf("negative resource fee %d", sim.MinResourceFee))
	}
	total := baseFee + sim.MinResourceFee
	if total > math.MaxUint32 {
		return nil, apperror.ErrInvalidFee()
	}
	env, err := s.assemble(source, total, intent.TimeoutSeconds, nil, op)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("source", logger.ShortAddress(sourceBase)).
		Str("destination", logger.ShortAddress(dest)).
		Str("contract", contractID).
		Str("amount", intent.Amount.String()).
		Int64("resource_fee", sim.MinResourceFee).
		Int64("latest_ledger", sim.LatestLedger).
		Str("hash", env.Hash).
		Msg("contract transfer built")
	return env, nil
}

// tokenContract returns the contract to call: the token itself, or the
// asset's Stellar Asset Contract for native and issued assets.
func tokenContract(asset domain.Asset, passphrase string) (string, error) {
	if asset.Kind == domain.AssetKindContract {
		return asset.ContractID, nil
	}
	classic, ok := classicAsset(asset)
	if !ok {
		return "", apperror.ErrUnsupportedAsset()
	}
	xdrAsset, err := classic.ToXDR()
	if err != nil {
		return "", apperror.ErrInvalidAsset(err.Error())
	}
	id, err := xdrAsset.ContractID(passphrase)
	if err != nil {
		return "", apperror.ErrBuildFailed(err)
	}
	return strkey.Encode(strkey.VersionByteContract, id[:])
}

func transferOperation(contractID, from, to string, amount decimal.Decimal, decimals int) (*txnbuild.InvokeHostFunction, error) {
	contract, err := scAddress(contractID)
	if err != nil {
		return nil, apperror.ErrInvalidAsset(err.Error())
	}
	fromVal, err := addressVal(from)
	if err != nil {
		return nil, apperror.ErrInvalidSource()
	}
	toVal, err := addressVal(to)
	if err != nil {
		return nil, apperror.ErrInvalidDestination()
	}
	amountVal, err := i128Val(amount, decimals)
	if err != nil {
		return nil, apperror.ErrInvalidAmount()
	}

	return &txnbuild.InvokeHostFunction{
		HostFunction: xdr.HostFunction{
			Type: xdr.HostFunctionTypeHostFunctionTypeInvokeContract,
			InvokeContract: &xdr.InvokeContractArgs{
				ContractAddress: contract,
				FunctionName:    xdr.ScSymbol(transferFunction),
				Args:            []xdr.ScVal{fromVal, toVal, amountVal},
			},
		},
	}, nil
}

// applySimulation attaches the simulated footprint and authorizations to op.
func applySimulation(op *txnbuild.InvokeHostFunction, sim *domain.SimulationResult) error {
	var data xdr.SorobanTransactionData
	if err := xdr.SafeUnmarshalBase64(sim.TransactionData, &data); err != nil {
		return fmt.Errorf("decoding transaction data: %w", err)
	}
	auth := make([]xdr.SorobanAuthorizationEntry, 0, len(sim.Auth))
	for _, encoded := range sim.Auth {
		var entry xdr.SorobanAuthorizationEntry
		if err := xdr.SafeUnmarshalBase64(encoded, &entry); err != nil {
			return fmt.Errorf("decoding auth entry: %w", err)
		}
		auth = append(auth, entry)
	}
	op.Auth = auth
	op.Ext = xdr.TransactionExt{V: 1, SorobanData: &data}
	return nil
}

// scAddress accepts G accounts and C contracts.
func scAddress(address string) (xdr.ScAddress, error) {
	if domain.IsValidContractID(address) {
		raw, err := strkey.Decode(strkey.VersionByteContract, address)
		if err != nil {
			return xdr.ScAddress{}, err
		}
		var id xdr.Hash
		copy(id[:], raw)
		return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeContract, ContractId: &id}, nil
	}
	accountID, err := xdr.AddressToAccountId(address)
	if err != nil {
		return xdr.ScAddress{}, err
	}
	return xdr.ScAddress{Type: xdr.ScAddressTypeScAddressTypeAccount, AccountId: &accountID}, nil
}

func addressVal(address string) (xdr.ScVal, error) {
	addr, err := scAddress(address)
	if err != nil {
		return xdr.ScVal{}, err
	}
	return xdr.ScVal{Type: xdr.ScValTypeScvAddress, Address: &addr}, nil
}

// i128Val scales amount to the token's integer units.
func i128Val(amount decimal.Decimal, decimals int) (xdr.ScVal, error) {
	units := amount.Shift(int32(decimals))
	if !units.Equal(units.Truncate(0)) {
		return xdr.ScVal{}, fmt.Errorf("amount %s exceeds %d decimals", amount, decimals)
	}
	v := units.BigInt()
	if v.Sign() < 0 || v.BitLen() > 127 {
		return xdr.ScVal{}, errAmountOverflowsI128
	}
	hi := new(big.Int).Rsh(v, 64)
	lo := new(big.Int).And(v, maxUint64)
	parts := xdr.Int128Parts{Hi: xdr.Int64(hi.Int64()), Lo: xdr.Uint64(lo.Uint64())}
	return xdr.ScVal{Type: xdr.ScValTypeScvI128, I128: &parts}, nil
}
