package app

import (
	"context"

	"coindash/internal/dashboard"
	"coindash/internal/loader"
	"coindash/internal/view"
)

// Controller runs the page actions: the two searches and reload.
type Controller struct {
	store    *dashboard.Store
	renderer *view.Renderer
	loader   *loader.Loader
}

func NewController(store *dashboard.Store, renderer *view.Renderer, l *loader.Loader) *Controller {
	return &Controller{store: store, renderer: renderer, loader: l}
}

// SearchCoins narrows the coin table to the full coin dataset filtered by
// query. The exchange table is reset to every exchange and charts are
// left alone. It returns the table bodies this search produced.
func (c *Controller) SearchCoins(query string) view.Tables {
	s := c.store.Load()
	c.renderer.SetSearch(view.SearchCoin, query)
	return c.renderer.RenderTables(dashboard.FilterCoins(s.Coins, query), s.Exchanges)
}

// SearchExchanges is the mirror of SearchCoins for the exchange table.
func (c *Controller) SearchExchanges(query string) view.Tables {
	s := c.store.Load()
	c.renderer.SetSearch(view.SearchExchange, query)
	return c.renderer.RenderTables(s.Coins, dashboard.FilterExchanges(s.Exchanges, query))
}

// Reload clears both search boxes and loads fresh data.
func (c *Controller) Reload(ctx context.Context) error {
	c.renderer.ClearSearch()
	return c.loader.Load(ctx)
}
