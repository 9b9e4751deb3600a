package validation

import (
	"context"
	"strings"

	"github.com/riskibarqy/scoreboard/internal/domain/team"
)

// TeamPayload is a team as submitted by clients. Nil fields were absent.
type TeamPayload struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

type teamRules struct {
	Name        *string `json:"name" validate:"omitnil,min=3,max=128,teamname"`
	Description *string `json:"description" validate:"omitnil,max=1024"`
}

// ValidateTeam checks payload and returns the sanitized fields as a patch.
func (p *Pipeline) ValidateTeam(ctx context.Context, payload TeamPayload, mode Mode) (team.Patch, error) {
	var errs Errors

	rules := teamRules{Description: payload.Description}
	if payload.Name != nil {
		name := strings.TrimSpace(*payload.Name)
		rules.Name = &name
	}

	failed, err := p.checkStruct(ctx, rules)
	if err != nil {
		return team.Patch{}, err
	}
	p.checkPresent(&errs, failed, "name", rules.Name != nil, mode)
	if payload.Description != nil {
		p.checkPresent(&errs, failed, "description", true, mode)
	}

	if err := errs.err(); err != nil {
		p.logger.DebugContext(ctx, "team payload rejected", "errors", len(errs))
		return team.Patch{}, err
	}

	return p.sanitizeTeam(rules), nil
}

func (p *Pipeline) sanitizeTeam(rules teamRules) team.Patch {
	var patch team.Patch
	if rules.Name != nil {
		name := p.sanitizer.Apply(*rules.Name)
		patch.Name = &name
	}
	if rules.Description != nil {
		description := p.sanitizer.Apply(*rules.Description)
		patch.Description = &description
	}
	return patch
}
