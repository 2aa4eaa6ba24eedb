package swapengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/junctionlabs/junction-backend/internal/ledger"
	"github.com/junctionlabs/junction-backend/internal/model"
	"github.com/junctionlabs/junction-backend/internal/store"
	"github.com/junctionlabs/junction-backend/internal/testutil"
)

type engineFixture struct {
	db     *gorm.DB
	store  *store.Store
	ledger ledger.ILedger
	engine IEngine
}

func newEngineFixture(t *testing.T) *engineFixture {
	t.Helper()

	db := testutil.NewTestDB(t)
	s := store.New()
	log := testutil.NewTestLogger()
	l := ledger.New(s.Balance, log)

	return &engineFixture{
		db:     db,
		store:  s,
		ledger: l,
		engine: New(db, s, l, log),
	}
}

func (f *engineFixture) fund(t *testing.T, user, symbol string, amount uint64) {
	t.Helper()
	err := store.DoInTx(f.db, func(tx *gorm.DB) error {
		return f.ledger.Credit(tx, user, symbol, amount)
	})
	require.NoError(t, err)
}

func (f *engineFixture) balance(t *testing.T, user, symbol string) uint64 {
	t.Helper()
	amount, err := f.ledger.GetBalance(f.db, user, symbol)
	require.NoError(t, err)
	return amount
}

func (f *engineFixture) pendingCount(t *testing.T, now time.Time) int {
	t.Helper()
	pending, err := f.engine.ListPending(now)
	require.NoError(t, err)
	return len(pending)
}

func TestCreateEscrowsBalance(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 1000)

	id, err := f.engine.Create("alice", "ICP", 400, "BTC", model.ChainBitcoin, time.Hour, now)
	require.NoError(t, err)
	assert.NotZero(t, id)

	assert.Equal(t, uint64(600), f.balance(t, "alice", "ICP"))

	req, err := f.engine.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "alice", req.User)
	assert.Equal(t, model.ChainICP, req.FromChain)
	assert.Equal(t, uint64(400), req.FromAmount)
	assert.Equal(t, "BTC", req.ToSymbol)
	assert.Equal(t, model.ChainBitcoin, req.ToChain)
}

func TestCreateInvalidDuration(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 1000)

	for _, d := range []time.Duration{0, -time.Minute} {
		_, err := f.engine.Create("alice", "ICP", 100, "BTC", model.ChainBitcoin, d, now)
		assert.ErrorIs(t, err, model.ErrInvalidDuration)
	}

	assert.Equal(t, uint64(1000), f.balance(t, "alice", "ICP"))
	assert.Zero(t, f.pendingCount(t, now))
}

func TestCreateZeroAmount(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 1000)

	_, err := f.engine.Create("alice", "ICP", 0, "BTC", model.ChainBitcoin, time.Hour, now)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)
	assert.Zero(t, f.pendingCount(t, now))
}

func TestCreateInsufficientFundsLeavesRegistryUntouched(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 100)

	_, err := f.engine.Create("alice", "ICP", 101, "BTC", model.ChainBitcoin, time.Hour, now)
	assert.ErrorIs(t, err, model.ErrInsufficientFunds)

	assert.Equal(t, uint64(100), f.balance(t, "alice", "ICP"))
	assert.Zero(t, f.pendingCount(t, now))
}

func TestCreateUnsupportedSymbol(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()

	_, err := f.engine.Create("alice", "DOGE", 100, "BTC", model.ChainBitcoin, time.Hour, now)
	assert.ErrorIs(t, err, model.ErrUnsupportedChain)
}

func TestExecuteSettlesCompatiblePair(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 1000)
	f.fund(t, "bob", "BTC", 50000)

	idA, err := f.engine.Create("alice", "ICP", 1000, "BTC", model.ChainBitcoin, time.Hour, now)
	require.NoError(t, err)
	idB, err := f.engine.Create("bob", "BTC", 50000, "ICP", model.ChainICP, time.Hour, now)
	require.NoError(t, err)

	require.NoError(t, f.engine.Execute(idA, idB, now))

	assert.Equal(t, uint64(50000), f.balance(t, "alice", "BTC"))
	assert.Equal(t, uint64(0), f.balance(t, "alice", "ICP"))
	assert.Equal(t, uint64(1000), f.balance(t, "bob", "ICP"))
	assert.Equal(t, uint64(0), f.balance(t, "bob", "BTC"))

	assert.Zero(t, f.pendingCount(t, now))
	_, err = f.engine.Get(idA)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = f.engine.Get(idB)
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestExecuteOrderIndependent(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ckBTC", 700)
	f.fund(t, "bob", "ETH", 900)

	idA, err := f.engine.Create("alice", "ckBTC", 700, "ETH", model.ChainEthereum, time.Hour, now)
	require.NoError(t, err)
	idB, err := f.engine.Create("bob", "ETH", 900, "ckBTC", model.ChainICP, time.Hour, now)
	require.NoError(t, err)

	require.NoError(t, f.engine.Execute(idB, idA, now))

	assert.Equal(t, uint64(900), f.balance(t, "alice", "ETH"))
	assert.Equal(t, uint64(700), f.balance(t, "bob", "ckBTC"))
}

func TestExecuteSameRequest(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 100)

	id, err := f.engine.Create("alice", "ICP", 100, "BTC", model.ChainBitcoin, time.Hour, now)
	require.NoError(t, err)

	err = f.engine.Execute(id, id, now)
	assert.ErrorIs(t, err, model.ErrSameRequest)

	// request still open and escrow still held
	assert.Equal(t, 1, f.pendingCount(t, now))
	assert.Equal(t, uint64(0), f.balance(t, "alice", "ICP"))
}

func TestExecuteNotFound(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 100)

	id, err := f.engine.Create("alice", "ICP", 100, "BTC", model.ChainBitcoin, time.Hour, now)
	require.NoError(t, err)

	err = f.engine.Execute(id, id+1000, now)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, 1, f.pendingCount(t, now))
}

func TestExecuteIncompatibleLeavesBothOpen(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 100)
	f.fund(t, "bob", "ETH", 200)

	// bob wants BTC, not alice's ICP
	idA, err := f.engine.Create("alice", "ICP", 100, "ETH", model.ChainEthereum, time.Hour, now)
	require.NoError(t, err)
	idB, err := f.engine.Create("bob", "ETH", 200, "BTC", model.ChainBitcoin, time.Hour, now)
	require.NoError(t, err)

	err = f.engine.Execute(idA, idB, now)
	assert.ErrorIs(t, err, model.ErrIncompatible)

	assert.Equal(t, 2, f.pendingCount(t, now))
	assert.Equal(t, uint64(0), f.balance(t, "alice", "ICP"))
	assert.Equal(t, uint64(0), f.balance(t, "bob", "ETH"))
}

func TestExecuteExpiredRefundsAndFails(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 100)
	f.fund(t, "bob", "BTC", 200)

	idA, err := f.engine.Create("alice", "ICP", 100, "BTC", model.ChainBitcoin, time.Minute, now)
	require.NoError(t, err)
	idB, err := f.engine.Create("bob", "BTC", 200, "ICP", model.ChainICP, time.Hour, now)
	require.NoError(t, err)

	later := now.Add(2 * time.Minute)
	err = f.engine.Execute(idA, idB, later)
	assert.ErrorIs(t, err, model.ErrExpired)

	// expired side refunded and removed, live side untouched
	assert.Equal(t, uint64(100), f.balance(t, "alice", "ICP"))
	assert.Equal(t, uint64(0), f.balance(t, "bob", "BTC"))
	_, err = f.engine.Get(idA)
	assert.ErrorIs(t, err, model.ErrNotFound)
	_, err = f.engine.Get(idB)
	assert.NoError(t, err)

	// a second attempt sees the refunded request as gone, not expired again
	err = f.engine.Execute(idA, idB, later)
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, uint64(100), f.balance(t, "alice", "ICP"))
}

func TestListPendingFiltersExpired(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 300)

	_, err := f.engine.Create("alice", "ICP", 100, "BTC", model.ChainBitcoin, time.Minute, now)
	require.NoError(t, err)
	liveID, err := f.engine.Create("alice", "ICP", 200, "BTC", model.ChainBitcoin, time.Hour, now)
	require.NoError(t, err)

	later := now.Add(10 * time.Minute)
	pending, err := f.engine.ListPending(later)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, liveID, pending[0].ID)
}

func TestSweepExpiredRefundsExactlyOnce(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()
	f.fund(t, "alice", "ICP", 100)
	f.fund(t, "bob", "BTC", 200)

	_, err := f.engine.Create("alice", "ICP", 100, "BTC", model.ChainBitcoin, time.Minute, now)
	require.NoError(t, err)
	_, err = f.engine.Create("bob", "BTC", 200, "ICP", model.ChainICP, time.Hour, now)
	require.NoError(t, err)

	later := now.Add(5 * time.Minute)
	swept, err := f.engine.SweepExpired(later)
	require.NoError(t, err)
	assert.Equal(t, 1, swept)
	assert.Equal(t, uint64(100), f.balance(t, "alice", "ICP"))

	// a second sweep over the same window refunds nothing
	swept, err = f.engine.SweepExpired(later)
	require.NoError(t, err)
	assert.Zero(t, swept)
	assert.Equal(t, uint64(100), f.balance(t, "alice", "ICP"))

	assert.Equal(t, 1, f.pendingCount(t, later))
}

// Conservation: across creates, executions, and sweeps, free balances plus
// open escrow always equal the amounts originally credited.
func TestConservation(t *testing.T) {
	f := newEngineFixture(t)
	now := time.Now()

	const icpTotal, btcTotal = 10_000, 5_000
	f.fund(t, "alice", "ICP", icpTotal)
	f.fund(t, "bob", "BTC", btcTotal)

	totalHeld := func(at time.Time) map[string]uint64 {
		held := map[string]uint64{}
		for _, user := range []string{"alice", "bob"} {
			balances, err := f.ledger.GetAllBalances(f.db, user)
			require.NoError(t, err)
			for _, b := range balances {
				held[b.Symbol] += b.Amount
			}
		}
		pending, err := f.engine.ListPending(at)
		require.NoError(t, err)
		for _, p := range pending {
			held[p.FromSymbol] += p.FromAmount
		}
		return held
	}

	idA, err := f.engine.Create("alice", "ICP", 4_000, "BTC", model.ChainBitcoin, time.Hour, now)
	require.NoError(t, err)
	idB, err := f.engine.Create("bob", "BTC", 1_500, "ICP", model.ChainICP, time.Hour, now)
	require.NoError(t, err)
	_, err = f.engine.Create("alice", "ICP", 2_000, "BTC", model.ChainBitcoin, time.Minute, now)
	require.NoError(t, err)

	held := totalHeld(now)
	assert.Equal(t, uint64(icpTotal), held["ICP"])
	assert.Equal(t, uint64(btcTotal), held["BTC"])

	require.NoError(t, f.engine.Execute(idA, idB, now))

	held = totalHeld(now)
	assert.Equal(t, uint64(icpTotal), held["ICP"])
	assert.Equal(t, uint64(btcTotal), held["BTC"])

	later := now.Add(10 * time.Minute)
	_, err = f.engine.SweepExpired(later)
	require.NoError(t, err)

	held = totalHeld(later)
	assert.Equal(t, uint64(icpTotal), held["ICP"])
	assert.Equal(t, uint64(btcTotal), held["BTC"])
}

func TestCompatible(t *testing.T) {
	base := func() (*model.SwapRequest, *model.SwapRequest) {
		a := &model.SwapRequest{
			FromChain: model.ChainICP, FromSymbol: "ICP", FromAmount: 100,
			ToSymbol: "BTC", ToChain: model.ChainBitcoin,
		}
		b := &model.SwapRequest{
			FromChain: model.ChainBitcoin, FromSymbol: "BTC", FromAmount: 9_999,
			ToSymbol: "ICP", ToChain: model.ChainICP,
		}
		return a, b
	}

	a, b := base()
	assert.True(t, Compatible(a, b))
	assert.True(t, Compatible(b, a))

	// amounts are pre-agreed, never part of the predicate
	a, b = base()
	b.FromAmount = 1
	assert.True(t, Compatible(a, b))

	a, b = base()
	b.ToSymbol = "ETH"
	assert.False(t, Compatible(a, b))

	a, b = base()
	a.ToChain = model.ChainICP
	assert.False(t, Compatible(a, b))
}
