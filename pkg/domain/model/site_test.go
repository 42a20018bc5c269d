package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/domain/types"
)

func TestCloneSiteInputValidate(t *testing.T) {
	testCases := map[string]struct {
		input   model.CloneSiteInput
		wantErr bool
		msg     string
	}{
		"valid": {
			input: model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog-2"},
		},
		"valid with hero lines": {
			input: model.CloneSiteInput{SiteName: "My Blog", RepoName: "my-blog", HeroLine1: "Hello", HeroLine2: "World"},
		},
		"missing site name": {
			input:   model.CloneSiteInput{RepoName: "my-blog"},
			wantErr: true,
			msg:     "site_name and repo_name are required",
		},
		"missing repo name": {
			input:   model.CloneSiteInput{SiteName: "My Blog"},
			wantErr: true,
			msg:     "site_name and repo_name are required",
		},
		"empty input": {
			input:   model.CloneSiteInput{},
			wantErr: true,
			msg:     "site_name and repo_name are required",
		},
		"upper case": {
			input:   model.CloneSiteInput{SiteName: "My Blog", RepoName: "My-Blog"},
			wantErr: true,
			msg:     "lowercase letters, digits and hyphens",
		},
		"underscore": {
			input:   model.CloneSiteInput{SiteName: "My Blog", RepoName: "my_blog"},
			wantErr: true,
			msg:     "lowercase letters, digits and hyphens",
		},
		"unicode": {
			input:   model.CloneSiteInput{SiteName: "My Blog", RepoName: "café"},
			wantErr: true,
			msg:     "lowercase letters, digits and hyphens",
		},
	}

	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			err := tc.input.Validate()
			if !tc.wantErr {
				gt.NoError(t, err)
				return
			}
			gt.True(t, errors.Is(err, types.ErrValidationFailed))
			gt.S(t, err.Error()).Contains(tc.msg)
		})
	}
}

func TestCloneSiteInputHelpers(t *testing.T) {
	t.Run("logo text is the upper-cased first letter", func(t *testing.T) {
		gt.V(t, (&model.CloneSiteInput{SiteName: "my blog"}).LogoText()).Equal("M")
		gt.V(t, (&model.CloneSiteInput{SiteName: "éclair"}).LogoText()).Equal("É")
		gt.V(t, (&model.CloneSiteInput{}).LogoText()).Equal("")
	})

	t.Run("hero is requested by either line", func(t *testing.T) {
		gt.False(t, (&model.CloneSiteInput{}).HasHero())
		gt.True(t, (&model.CloneSiteInput{HeroLine1: "a"}).HasHero())
		gt.True(t, (&model.CloneSiteInput{HeroLine2: "b"}).HasHero())
	})
}

func TestDeployment(t *testing.T) {
	d := &model.Deployment{URL: "https://my-blog.acme.workers.dev"}
	gt.V(t, d.Hostname()).Equal("my-blog.acme.workers.dev")
	gt.V(t, d.AdminURL()).Equal("https://my-blog.acme.workers.dev/admin/")
}
