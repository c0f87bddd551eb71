package loader

import (
	"context"
	"fmt"
	"time"

	"coindash/internal/dashboard"
	"coindash/pkg/coinlore"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Fetcher is the remote source of both datasets.
type Fetcher interface {
	GetTickers(ctx context.Context) ([]coinlore.Coin, error)
	GetExchanges(ctx context.Context) ([]coinlore.Exchange, error)
}

// Painter receives the state after a load.
type Painter interface {
	RenderDashboard(s dashboard.State)
	SetLastUpdate(t time.Time)
}

type Loader struct {
	fetcher Fetcher
	store   *dashboard.Store
	view    Painter
	logger  *zap.Logger
	now     func() time.Time
}

func New(fetcher Fetcher, store *dashboard.Store, view Painter, logger *zap.Logger) *Loader {
	return &Loader{
		fetcher: fetcher,
		store:   store,
		view:    view,
		logger:  logger,
		now:     time.Now,
	}
}

// Load fetches tickers and exchanges concurrently. If both succeed the
// datasets are replaced and the dashboard is repainted; if either fails
// the error is logged and returned and the previous datasets stay. The
// last-update time is stamped either way.
//
// Overlapping loads are not serialized: the one that finishes last wins.
func (l *Loader) Load(ctx context.Context) error {
	log := l.logger.With(zap.String("load_id", uuid.NewString()))
	started := l.now()

	defer func() {
		now := l.now()
		l.store.Update(func(s dashboard.State) dashboard.State { return s.WithLastUpdate(now) })
		l.view.SetLastUpdate(now)
	}()

	var (
		coins     []coinlore.Coin
		exchanges []coinlore.Exchange
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		c, err := l.fetcher.GetTickers(gctx)
		if err != nil {
			return fmt.Errorf("fetch tickers: %w", err)
		}
		coins = c
		return nil
	})
	g.Go(func() error {
		e, err := l.fetcher.GetExchanges(gctx)
		if err != nil {
			return fmt.Errorf("fetch exchanges: %w", err)
		}
		exchanges = e
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Error("failed to load dashboard data", zap.Error(err))
		return err
	}

	state := l.store.Update(func(s dashboard.State) dashboard.State {
		return s.WithData(coins, exchanges)
	})
	l.view.RenderDashboard(state)

	log.Info("dashboard loaded",
		zap.Int("coins", len(state.Coins)),
		zap.Int("exchanges", len(state.Exchanges)),
		zap.Duration("took", l.now().Sub(started)))
	return nil
}
