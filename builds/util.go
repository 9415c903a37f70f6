package builds

import (
	"time"

	"github.com/samber/lo"

	"github.com/narthia/jira-client/pkg/models"
)

// IssueKeys returns the distinct issue keys referenced across the payload's
// builds, in first-seen order.
func (p SubmitBuildsPayload) IssueKeys() []string {
	return models.UniqueIssueKeys(lo.Map(p.Builds, func(b BuildData, _ int) []string {
		return b.IssueKeys
	})...)
}

// LastUpdatedTime parses the build's lastUpdated timestamp.
func (b BuildData) LastUpdatedTime() (time.Time, error) {
	return models.ParseTimestamp(b.LastUpdated)
}
