package commands

import (
	"context"

	"prospector/internal/application"
	"prospector/internal/domain"
)

// FindCommand runs discovery and filters the result with a wildcard query
type FindCommand struct {
	engine *application.Engine
	Query  domain.Query
	Opts   application.Options
}

// NewFindCommand creates a new FindCommand
func NewFindCommand(engine *application.Engine, query domain.Query, opts application.Options) *FindCommand {
	return &FindCommand{
		engine: engine,
		Query:  query,
		Opts:   opts,
	}
}

// Execute discovers projects and returns those matching the query. A cache
// persistence failure is returned together with the matches, so callers can
// still present them.
func (c *FindCommand) Execute(ctx context.Context) ([]domain.Project, error) {
	projects, err := c.engine.Discover(ctx, c.Opts)
	if len(projects) == 0 {
		if err != nil {
			return nil, err
		}
		return nil, application.ErrNoProjects
	}

	if c.Query.IsZero() {
		return projects, err
	}

	matches := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if c.Query.MatchesProject(p) {
			matches = append(matches, p)
		}
	}
	if len(matches) == 0 && err == nil {
		return nil, application.ErrNoMatch
	}
	return matches, err
}

// ListCommand runs discovery without any query filtering
type ListCommand struct {
	engine *application.Engine
	Opts   application.Options
}

// NewListCommand creates a new ListCommand
func NewListCommand(engine *application.Engine, opts application.Options) *ListCommand {
	return &ListCommand{
		engine: engine,
		Opts:   opts,
	}
}

// Execute discovers and returns all projects
func (c *ListCommand) Execute(ctx context.Context) ([]domain.Project, error) {
	return c.engine.Discover(ctx, c.Opts)
}
