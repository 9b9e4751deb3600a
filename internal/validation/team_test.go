package validation

import (
	"context"
	"strings"
	"testing"
)

func TestValidateTeamCreate(t *testing.T) {
	cases := []struct {
		name      string
		payload   TeamPayload
		wantField string
	}{
		{name: "valid", payload: TeamPayload{Name: ptr("  Fram Reykjavik-2 ")}},
		{name: "missing name", payload: TeamPayload{}, wantField: "name"},
		{name: "too short after trim", payload: TeamPayload{Name: ptr("  ab  ")}, wantField: "name"},
		{name: "too long", payload: TeamPayload{Name: ptr(strings.Repeat("a", 129))}, wantField: "name"},
		{name: "accented letters rejected", payload: TeamPayload{Name: ptr("Þróttur")}, wantField: "name"},
		{name: "markup rejected", payload: TeamPayload{Name: ptr("<b>Fram</b>")}, wantField: "name"},
		{name: "description too long", payload: TeamPayload{Name: ptr("Fram"), Description: ptr(strings.Repeat("x", 1025))}, wantField: "description"},
		{name: "description at limit", payload: TeamPayload{Name: ptr("Fram"), Description: ptr(strings.Repeat("ð", 1024))}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p, _ := newTestPipeline(t)

			_, err := p.ValidateTeam(context.Background(), tc.payload, Create)
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("expected payload to pass, got %v", err)
				}
				return
			}
			if _, ok := fieldsOf(t, err)[tc.wantField]; !ok {
				t.Fatalf("expected error on %q, got %v", tc.wantField, err)
			}
		})
	}
}

func TestValidateTeamSanitizesAfterChecks(t *testing.T) {
	p, _ := newTestPipeline(t)

	patch, err := p.ValidateTeam(context.Background(), TeamPayload{
		Name:        ptr(" Fram "),
		Description: ptr(`<script>alert(1)</script>Tom & "Jerry"`),
	}, Create)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if *patch.Name != "Fram" {
		t.Fatalf("expected trimmed name, got %q", *patch.Name)
	}
	if want := "Tom &amp; &quot;Jerry&quot;"; *patch.Description != want {
		t.Fatalf("unexpected description: got=%q want=%q", *patch.Description, want)
	}
}

func TestValidateTeamUpdateAllowsPartialPayload(t *testing.T) {
	p, _ := newTestPipeline(t)

	patch, err := p.ValidateTeam(context.Background(), TeamPayload{Description: ptr("new blurb")}, Update)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if patch.Name != nil || patch.Description == nil || *patch.Description != "new blurb" {
		t.Fatalf("unexpected patch: %+v", patch)
	}
}
