package main

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDealsSamples(t *testing.T) {
	env := newTestEnv(t)
	const pg = "MP21673270"

	out := env.mustRun("deals", "get", "-a", testAccount, "-p", pg, "-d", "1840860")
	assert.Contains(t, out, "Found deal with name \"buyers/12345678/proposals/MP21673270/deals/1840860\":\n")
	assert.Contains(t, out, "\t-Description: Homepage takeover\n")
	assert.Contains(t, out, "-Reservation type: STANDARD\n")

	t.Run("Patch programmatic guaranteed", func(t *testing.T) {
		out := env.mustRun("deals", "patch-programmatic-guaranteed", "-a", testAccount, "-p", pg, "-d", "1840860", "-r", "2",
			"--flight-start-time", "2030-03-01T00:00:00Z", "--flight-end-time", "2030-03-31T00:00:00Z",
			"--fixed-price-units", "5", "--fixed-price-nanos", "250000000")
		assert.Contains(t, out, "Patching deal with name \"buyers/12345678/proposals/MP21673270/deals/1840860\":\n")
		assert.Contains(t, out, "\t-Proposal revision: 3\n")
		assert.Contains(t, out, "\t-Flight start time: 2030-03-01T00:00:00Z\n")
		assert.Contains(t, out, "-Units: 5\n")
		assert.Contains(t, out, "-Nanos: 250000000\n")
		assert.Contains(t, out, "-Currency code: USD\n", "fields outside the mask are kept")
	})

	t.Run("Patch preferred deal with default flight", func(t *testing.T) {
		out := env.mustRun("deals", "patch-preferred", "-a", testAccount, "-p", "MP14138120", "-d", "1840861", "-r", "4")
		assert.Contains(t, out, "\t-Proposal revision: 5\n")
		assert.Contains(t, out, "-Units: 1\n")
		assert.NotContains(t, out, "2024-01-20T00:00:00Z")
	})

	t.Run("Batch update", func(t *testing.T) {
		out := env.mustRun("deals", "batch-update", "-a", testAccount, "-p", pg, "-r", "3",
			"-d", "1840860", "-u", "7777001,7777002")
		assert.Contains(t, out, "Batch updating deals for proposal with name \"buyers/12345678/proposals/MP21673270\":\n")
		assert.Contains(t, out, "*Deal name: buyers/12345678/proposals/MP21673270/deals/1840860\n")
		assert.Contains(t, out, "\t-Proposal revision: 4\n")
		assert.Contains(t, out, "-User list targeting:\n")
		assert.Contains(t, out, "-Targeted Criteria IDs:\n")
		assert.Contains(t, out, "-7777001\n")
		assert.Contains(t, out, "-7777002\n")
	})

	t.Run("Batch update with a stale revision", func(t *testing.T) {
		_, err := env.run("deals", "batch-update", "-a", testAccount, "-p", pg, "-r", "3", "-d", "1840860", "-u", "1")
		requireAPIError(t, err, http.StatusConflict)
	})

	t.Run("Batch update of an unknown deal", func(t *testing.T) {
		_, err := env.run("deals", "batch-update", "-a", testAccount, "-p", pg, "-r", "4", "-d", "9", "-u", "1")
		requireAPIError(t, err, http.StatusNotFound)
	})

	t.Run("Batch update requires user lists", func(t *testing.T) {
		_, err := env.run("deals", "batch-update", "-a", testAccount, "-p", pg, "-r", "4", "-d", "1840860")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"user-list-ids"`)
	})

	t.Run("Patch with only a flight end", func(t *testing.T) {
		out := env.mustRun("deals", "patch-programmatic-guaranteed", "-a", testAccount, "-p", pg, "-d", "1840860", "-r", "4",
			"--flight-end-time", "2030-04-10T00:00:00Z")
		assert.Contains(t, out, "\t-Proposal revision: 5\n")
		assert.Contains(t, out, "\t-Flight start time: 2030-04-09T00:00:00Z\n")
		assert.Contains(t, out, "\t-Flight end time: 2030-04-10T00:00:00Z\n")
	})

	t.Run("Deals of an unknown proposal", func(t *testing.T) {
		_, err := env.run("deals", "list", "-a", testAccount, "-p", "MP1")
		requireAPIError(t, err, http.StatusNotFound)
	})
}

func TestFinalizedDealsSamples(t *testing.T) {
	env := newTestEnv(t)
	const (
		pd = "buyers/12345678/finalizedDeals/1840861"
		pg = "buyers/12345678/finalizedDeals/1840860"
	)

	out := env.mustRun("finalized-deals", "list", "-a", testAccount)
	assert.Contains(t, out, "Found finalized deals for buyer account ID '12345678':\n")
	assert.Contains(t, out, "*Finalized deal name: "+pd+"\n")
	assert.NotContains(t, out, pg)

	out = env.mustRun("finalized-deals", "list", "-a", testAccount, "-f", "dealServingStatus = ENDED")
	assert.Equal(t, "Found finalized deals for buyer account ID '12345678':\nNo finalized deals found.\n", out)

	out = env.mustRun("finalized-deals", "get", "-a", testAccount, "-d", "1840861")
	assert.Contains(t, out, "Found finalized deal with name \""+pd+"\":\n")
	assert.Contains(t, out, "\t-Deal serving status: ACTIVE\n")
	assert.Contains(t, out, "\t-Deal:\n")
	assert.Contains(t, out, "-Deal type: PREFERRED_DEAL\n")

	t.Run("Pause and resume", func(t *testing.T) {
		out := env.mustRun("finalized-deals", "pause", "-a", testAccount, "-d", "1840861", "--reason", "Budget exhausted")
		assert.Contains(t, out, "Pausing finalized deal with name \""+pd+"\":\n")
		assert.Contains(t, out, "\t-Deal serving status: PAUSED_BY_BUYER\n")
		assert.Contains(t, out, "-Pause role: BUYER\n")
		assert.Contains(t, out, "-Pause reason: Budget exhausted\n")

		_, err := env.run("finalized-deals", "pause", "-a", testAccount, "-d", "1840861")
		apiErr := requireAPIError(t, err, http.StatusBadRequest)
		assert.Equal(t, "FAILED_PRECONDITION", apiErr.Status)

		out = env.mustRun("finalized-deals", "resume", "-a", testAccount, "-d", "1840861")
		assert.Contains(t, out, "Resuming finalized deal with name \""+pd+"\":\n")
		assert.Contains(t, out, "\t-Deal serving status: ACTIVE\n")
		assert.NotContains(t, out, "Pause reason")
	})

	t.Run("Ready to serve requires a programmatic guaranteed deal", func(t *testing.T) {
		_, err := env.run("finalized-deals", "set-ready-to-serve", "-a", testAccount, "-d", "1840861")
		requireAPIError(t, err, http.StatusBadRequest)
	})

	t.Run("Accepted proposal", func(t *testing.T) {
		env.mustRun("proposals", "accept", "-a", testAccount, "-p", "MP21673270", "-r", "2")

		out := env.mustRun("finalized-deals", "set-ready-to-serve", "-a", testAccount, "-d", "1840860")
		assert.Contains(t, out, "Signaling that finalized deal with name \""+pg+"\" is ready to serve:\n")
		assert.Contains(t, out, "\t-Ready to serve: true\n")

		out = env.mustRun("finalized-deals", "add-creative", "-a", testAccount, "-d", "1840860", "--creative-id", "cr-1")
		assert.Contains(t, out, "Adding creative to finalized deal with name \""+pg+"\":\n")
		assert.Equal(t, []string{"buyers/12345678/creatives/cr-1"}, env.server.GetState().Creatives(pg))
	})

	t.Run("Unknown finalized deal", func(t *testing.T) {
		out, err := env.run("finalized-deals", "resume", "-a", testAccount, "-d", "1")
		requireAPIError(t, err, http.StatusNotFound)
		assert.Equal(t, "Resuming finalized deal with name \"buyers/12345678/finalizedDeals/1\":\n", out)
	})
}
