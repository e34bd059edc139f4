package leads

import (
	"context"
	"testing"

	"hqd-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func sampleLead() models.Lead {
	l := models.NewLead(models.LeadSubmission{
		Name:      "Priya <Shah>",
		Email:     "priya@example.com",
		Phone:     "9876543210",
		EventType: "Sangeet",
		City:      "Jaipur",
	})
	l.ID = "0b7a9c1e-0000-4000-8000-000000000001"
	return l
}

func TestRenderEmail(t *testing.T) {
	msg, err := RenderEmail(sampleLead(), "from@hqd.in", "team@hqd.in")
	require.NoError(t, err)

	assert.Equal(t, "HQ.D | New Sangeet Inquiry from Priya <Shah>", msg.Subject)
	assert.Equal(t, []string{"team@hqd.in"}, msg.To)
	assert.Equal(t, "from@hqd.in", msg.From)
	assert.Contains(t, msg.HTML, "Priya &lt;Shah&gt;")
	assert.Contains(t, msg.HTML, "<strong>Bar Type:</strong> both")
	assert.Contains(t, msg.HTML, "<strong>Guests:</strong> Not specified")
	assert.NotContains(t, msg.HTML, "Setup Interest")
	assert.NotContains(t, msg.HTML, ">Message<")
}

func TestRenderEmail_OptionalSections(t *testing.T) {
	l := sampleLead()
	l.SetupInterest = "sangeet-spectacular"
	l.Message = "Need a mocktail corner too"

	msg, err := RenderEmail(l, "from@hqd.in", "team@hqd.in")
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "Setup Interest")
	assert.Contains(t, msg.HTML, "sangeet-spectacular")
	assert.Contains(t, msg.HTML, "Need a mocktail corner too")
}

func TestLogNotifier(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	n := &LogNotifier{Log: zap.New(core)}
	require.NoError(t, n.Notify(context.Background(), sampleLead()))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "email disabled, lead saved", entries[0].Message)
	assert.Equal(t, sampleLead().ID, entries[0].ContextMap()["lead_id"])
}
