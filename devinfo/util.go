package devinfo

import (
	"github.com/samber/lo"

	"github.com/narthia/jira-client/pkg/models"
)

// IssueKeys returns the distinct issue keys referenced by the repository's
// commits, branches and pull requests, in first-seen order.
func (r RepositoryData) IssueKeys() []string {
	commitKeys := lo.Map(r.Commits, func(c Commit, _ int) []string { return c.IssueKeys })
	branchKeys := lo.Map(r.Branches, func(b Branch, _ int) []string { return b.IssueKeys })
	prKeys := lo.Map(r.PullRequests, func(p PullRequest, _ int) []string { return p.IssueKeys })

	var all [][]string
	all = append(all, commitKeys...)
	all = append(all, branchKeys...)
	all = append(all, prKeys...)
	return models.UniqueIssueKeys(all...)
}

// EntityCount returns the number of entities the repository carries.
func (r RepositoryData) EntityCount() int {
	return len(r.Commits) + len(r.Branches) + len(r.PullRequests)
}
