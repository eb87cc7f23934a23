package storage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"memberhub/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type StagerSuite struct {
	suite.Suite
	dir    string
	stager domain.AssetStager
}

func TestStagerSuite(t *testing.T) {
	suite.Run(t, new(StagerSuite))
}

func (s *StagerSuite) SetupTest() {
	s.dir = s.T().TempDir()
	s.stager = NewAssetStager(s.dir, logrus.New())
}

type formFile struct {
	field   string
	name    string
	content string
}

// buildForm assembles a parsed multipart form the way fiber hands it to the
// stager.
func (s *StagerSuite) buildForm(files ...formFile) *multipart.Form {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for _, f := range files {
		part, err := w.CreateFormFile(f.field, f.name)
		s.Require().NoError(err)
		_, err = part.Write([]byte(f.content))
		s.Require().NoError(err)
	}
	s.Require().NoError(w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(64 << 20)
	s.Require().NoError(err)
	return form
}

func (s *StagerSuite) countStaged() int {
	count := 0
	filepath.Walk(s.dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() {
			count++
		}
		return nil
	})
	return count
}

func (s *StagerSuite) TestStageOrdersAssetsBySlot() {
	form := s.buildForm(
		formFile{"profile_image", "me.jpg", "img"},
		formFile{"business_profile_image_0", "logo.png", "img"},
		formFile{"media_gallery_0", "a.jpg", "img"},
		formFile{"media_gallery_0", "b.mp4", "vid"},
		formFile{"media_gallery_1", "c.pdf", "doc"},
	)

	assets, err := s.stager.Stage(form)
	s.Require().NoError(err)

	s.FileExists(assets.ProfileImage)
	s.True(strings.HasSuffix(assets.ProfileImage, ".jpg"))

	s.NotEmpty(assets.Profiles[0].Image)
	s.Len(assets.Profiles[0].Gallery, 2)
	s.True(strings.HasSuffix(assets.Profiles[0].Gallery[1], ".mp4"))

	s.Empty(assets.Profiles[1].Image)
	s.Len(assets.Profiles[1].Gallery, 1)

	s.Equal(5, s.countStaged())
	s.Len(assets.All(), 5)
}

func (s *StagerSuite) TestProfileImageMustBeImage() {
	form := s.buildForm(formFile{"profile_image", "me.mp4", "vid"})

	_, err := s.stager.Stage(form)

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Zero(s.countStaged())
}

func (s *StagerSuite) TestRejectedFileRollsBackEarlierSaves() {
	form := s.buildForm(
		formFile{"profile_image", "me.jpg", "img"},
		formFile{"business_profile_image_0", "logo.png", "img"},
		formFile{"media_gallery_0", "evil.exe", "bin"},
	)

	_, err := s.stager.Stage(form)

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Zero(s.countStaged())
}

func (s *StagerSuite) TestGalleryFileLimit() {
	files := []formFile{}
	for i := 0; i < maxGalleryFiles+1; i++ {
		files = append(files, formFile{"media_gallery_0", "g.jpg", "img"})
	}

	_, err := s.stager.Stage(s.buildForm(files...))

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Zero(s.countStaged())
}

func (s *StagerSuite) TestStageProfileSlot() {
	form := s.buildForm(
		formFile{"business_profile_image", "logo.webp", "img"},
		formFile{"media_gallery", "clip.mov", "vid"},
	)

	slot, err := s.stager.StageProfileSlot(form)
	s.Require().NoError(err)
	s.FileExists(slot.Image)
	s.Len(slot.Gallery, 1)
}

func (s *StagerSuite) TestCleanupRemovesFilesAndSwallowsMisses() {
	form := s.buildForm(
		formFile{"profile_image", "me.jpg", "img"},
		formFile{"media_gallery_0", "a.jpg", "img"},
	)

	assets, err := s.stager.Stage(form)
	s.Require().NoError(err)

	paths := assets.All()
	paths = append(paths, filepath.Join(s.dir, "never-existed.jpg"), "")

	s.stager.Cleanup(paths)
	s.Zero(s.countStaged())

	// Second pass over already-deleted paths must not blow up.
	s.stager.Cleanup(paths)
}
