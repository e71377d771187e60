package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UsersRegistered counts successful account registrations.
	UsersRegistered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warmshare_users_registered_total",
		Help: "Total number of registered user accounts",
	})

	// DonationsRecorded counts donations by whether they created a new
	// ledger record or incremented an existing one.
	DonationsRecorded = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "warmshare_donations_recorded_total",
		Help: "Total number of donations recorded",
	}, []string{"outcome"})

	// CommentsPosted counts comments posted to the board.
	CommentsPosted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "warmshare_comments_posted_total",
		Help: "Total number of comments posted",
	})
)
