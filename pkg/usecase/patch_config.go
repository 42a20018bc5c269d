package usecase

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sitecloner/pkg/domain/interfaces"
	"github.com/m-mizutani/sitecloner/pkg/domain/model"
	"github.com/m-mizutani/sitecloner/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

var (
	ptnSiteName  = regexp.MustCompile(`name:[ \t]*"?Test"?`)
	ptnLogoText  = regexp.MustCompile(`logo_text:[ \t]*"?T"?`)
	ptnHeroLine1 = regexp.MustCompile(`hero_title_line1:[ \t]*[^\r\n]*`)
	ptnHeroLine2 = regexp.MustCompile(`hero_title_line2:[ \t]*[^\r\n]*`)
)

// patchSiteConfig rewrites the template placeholders line by line. The rest of
// the document is left byte for byte as it was.
func patchSiteConfig(content []byte, input *model.CloneSiteInput) []byte {
	replace := func(src []byte, ptn *regexp.Regexp, key, value string) []byte {
		return ptn.ReplaceAllLiteral(src, []byte(key+": "+strconv.Quote(value)))
	}

	out := replace(content, ptnSiteName, "name", input.SiteName)
	out = replace(out, ptnLogoText, "logo_text", input.LogoText())
	if input.HeroLine1 != "" {
		out = replace(out, ptnHeroLine1, "hero_title_line1", input.HeroLine1)
	}
	if input.HeroLine2 != "" {
		out = replace(out, ptnHeroLine2, "hero_title_line2", input.HeroLine2)
	}
	return out
}

// patchConfig reads the site config and its blob SHA concurrently, applies
// the substitutions and writes the file back conditioned on that SHA.
func (x *UseCase) patchConfig(ctx context.Context, input *model.CloneSiteInput) error {
	gh := x.clients.GitHub()
	file := &interfaces.GetFileInput{
		Owner: string(x.config.Credentials.RepoOwner),
		Repo:  input.RepoName,
		Path:  x.config.ConfigPath,
		Ref:   x.config.Branch,
	}

	var (
		content []byte
		sha     string
	)
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		content, err = gh.GetFileContent(egCtx, file)
		return err
	})
	eg.Go(func() error {
		var err error
		sha, err = gh.GetFileSHA(egCtx, file)
		return err
	})
	if err := eg.Wait(); err != nil {
		return goerr.Wrap(err, "failed to read site config", goerr.V("path", file.Path))
	}

	patched := patchSiteConfig(content, input)
	if bytes.Equal(patched, content) {
		logging.From(ctx).Info("Site config has no placeholder to replace", slog.String("path", file.Path))
		return nil
	}

	if err := gh.PutFile(ctx, &interfaces.PutFileInput{
		Owner:   file.Owner,
		Repo:    file.Repo,
		Path:    file.Path,
		Message: fmt.Sprintf("Configure site %q", input.SiteName),
		Content: patched,
		Branch:  x.config.Branch,
		SHA:     sha,
	}); err != nil {
		return goerr.Wrap(err, "failed to write site config", goerr.V("path", file.Path))
	}

	return nil
}
