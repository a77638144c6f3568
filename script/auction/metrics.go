// Copyright (c) 2026 The SubAuction developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package auction

import "github.com/prometheus/client_golang/prometheus"

var (
	auctionsCreatedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_created_total",
		Help: "Counter of created auctions",
	})
	auctionsCancelledCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_cancelled_total",
		Help: "Counter of cancelled auctions",
	})
	auctionsSettledCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auctions_settled_total",
		Help: "Counter of settled auctions",
	})
	bidsPlacedCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_bids_placed_total",
		Help: "Counter of accepted bids",
	})
	settleFailuresCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "auction_settle_failures_total",
		Help: "Counter of auctions settled through the unlock-only fallback",
	})
)

func init() {
	prometheus.MustRegister(
		auctionsCreatedCounter,
		auctionsCancelledCounter,
		auctionsSettledCounter,
		bidsPlacedCounter,
		settleFailuresCounter,
	)
}
