package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"memberhub/domain"
	"memberhub/services/member/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
)

type fakeMemberRepo struct {
	registerFn    func(ctx context.Context, reg *domain.Registration) (*domain.Member, error)
	registerCalls int
	lastReg       *domain.Registration

	updateFn  func(ctx context.Context, id int, patch *domain.MemberUpdate) error
	lastPatch *domain.MemberUpdate

	detailFn func(ctx context.Context, id int) (*domain.MemberDetail, error)
}

func (f *fakeMemberRepo) Register(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
	f.registerCalls++
	f.lastReg = reg
	return f.registerFn(ctx, reg)
}

func (f *fakeMemberRepo) GetMemberDetail(ctx context.Context, id int) (*domain.MemberDetail, error) {
	if f.detailFn != nil {
		return f.detailFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) FindMemberByNo(ctx context.Context, memberNo string) (*domain.Member, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeMemberRepo) UpdateMember(ctx context.Context, id int, patch *domain.MemberUpdate) error {
	f.lastPatch = patch
	if f.updateFn != nil {
		return f.updateFn(ctx, id, patch)
	}
	return nil
}

func (f *fakeMemberRepo) DeleteMember(ctx context.Context, id int) error {
	return nil
}

type seqGenerator struct {
	prefix string
	n      int
}

func (g *seqGenerator) Next() string {
	g.n++
	return fmt.Sprintf("%s%06d", g.prefix, g.n)
}

type RegisterSuite struct {
	suite.Suite
	repo   *fakeMemberRepo
	gen    *seqGenerator
	stager domain.AssetStager
	uc     domain.MemberUseCase
	dir    string
}

func TestRegisterSuite(t *testing.T) {
	suite.Run(t, new(RegisterSuite))
}

func (s *RegisterSuite) SetupTest() {
	s.dir = s.T().TempDir()
	log := logrus.New()
	s.repo = &fakeMemberRepo{
		registerFn: func(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
			m := reg.Member
			m.ID = 1
			m.CreatedAt = time.Now()
			return &m, nil
		},
	}
	s.gen = &seqGenerator{prefix: "TST"}
	s.stager = storage.NewAssetStager(s.dir, log)
	s.uc = NewMemberUseCase(s.repo, s.stager, s.gen, log, 5*time.Second)
}

// stageFile writes a file under the temp upload dir so cleanup behavior can
// be observed for real.
func (s *RegisterSuite) stageFile(name string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte("payload"), 0o644))
	return path
}

func (s *RegisterSuite) baseRequest() *domain.RegisterRequest {
	return &domain.RegisterRequest{
		Name:             "Ada Okafor",
		Email:            "a@x.com",
		Password:         "secret123",
		MaritalStatus:    "single",
		BusinessProfiles: `[{"company_name":"Acme"}]`,
	}
}

func (s *RegisterSuite) TestSuccessfulRegistration() {
	res, err := s.uc.Register(context.Background(), s.baseRequest(), nil)
	s.Require().NoError(err)

	s.Equal(1, res.ID)
	s.Equal("a@x.com", res.Email)
	s.Equal("Ada Okafor", res.Name)
	s.Regexp("^TST", res.MemberNo)

	reg := s.repo.lastReg
	s.Require().NotNil(reg)
	s.Equal(domain.StatusPending, reg.Member.Status)
	s.Equal(domain.AccessBasic, reg.Member.AccessLevel)
	s.Require().Len(reg.Profiles, 1)
	s.Equal("Acme", reg.Profiles[0].CompanyName)
	s.Nil(reg.Family)

	// Stored as a salted hash, never plaintext.
	s.NotEqual("secret123", reg.Member.Password)
	s.NoError(bcrypt.CompareHashAndPassword([]byte(reg.Member.Password), []byte("secret123")))
}

func (s *RegisterSuite) TestValidationFailureCleansStagedFiles() {
	staged := &domain.StagedAssets{
		ProfileImage: s.stageFile("face.jpg"),
		Profiles: []domain.ProfileAssets{
			{Image: s.stageFile("logo.jpg"), Gallery: []string{s.stageFile("g1.jpg")}},
		},
	}

	req := s.baseRequest()
	req.Email = ""

	_, err := s.uc.Register(context.Background(), req, staged)

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Zero(s.repo.registerCalls)

	for _, p := range staged.All() {
		s.NoFileExists(p)
	}
}

func (s *RegisterSuite) TestEmptyBusinessProfileListRejected() {
	for _, raw := range []interface{}{nil, "", "[]", "not json"} {
		req := s.baseRequest()
		req.BusinessProfiles = raw

		staged := &domain.StagedAssets{ProfileImage: s.stageFile("face.jpg")}
		_, err := s.uc.Register(context.Background(), req, staged)

		var vErr *domain.ValidationError
		s.Require().ErrorAs(err, &vErr)
		s.NoFileExists(staged.ProfileImage)
	}
	s.Zero(s.repo.registerCalls)
}

func (s *RegisterSuite) TestFilesBeyondProfileListRejectedAndCleaned() {
	staged := &domain.StagedAssets{
		Profiles: []domain.ProfileAssets{
			{Image: s.stageFile("logo0.jpg")},
			{Image: s.stageFile("logo1.jpg"), Gallery: []string{s.stageFile("g1.jpg")}},
		},
	}

	// baseRequest submits a single business profile, so slot 1 has no home.
	_, err := s.uc.Register(context.Background(), s.baseRequest(), staged)

	var vErr *domain.ValidationError
	s.Require().ErrorAs(err, &vErr)
	s.Zero(s.repo.registerCalls)

	for _, p := range staged.All() {
		s.NoFileExists(p)
	}
}

func (s *RegisterSuite) TestEmptyTrailingSlotsAccepted() {
	// The form stager always reports the full run of slots; empty ones past
	// the profile list are fine.
	staged := &domain.StagedAssets{
		Profiles: []domain.ProfileAssets{
			{Image: s.stageFile("logo0.jpg")},
			{}, {}, {}, {},
		},
	}

	_, err := s.uc.Register(context.Background(), s.baseRequest(), staged)
	s.Require().NoError(err)
	s.FileExists(staged.Profiles[0].Image)
}

func (s *RegisterSuite) TestInvalidReferralRollsBackAndCleans() {
	s.repo.registerFn = func(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
		return nil, domain.ErrInvalidReferral
	}

	staged := &domain.StagedAssets{
		Profiles: []domain.ProfileAssets{{Gallery: []string{s.stageFile("g1.mp4")}}},
	}

	req := s.baseRequest()
	req.ReferralCode = "NOPE123"

	_, err := s.uc.Register(context.Background(), req, staged)
	s.Require().ErrorIs(err, domain.ErrInvalidReferral)

	for _, p := range staged.All() {
		s.NoFileExists(p)
	}
}

func (s *RegisterSuite) TestDuplicateEmailIsConflict() {
	s.repo.registerFn = func(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
		return nil, domain.ErrEmailTaken
	}

	_, err := s.uc.Register(context.Background(), s.baseRequest(), nil)
	s.Require().ErrorIs(err, domain.ErrEmailTaken)
}

func (s *RegisterSuite) TestMemberNoCollisionRetries() {
	failures := 2
	s.repo.registerFn = func(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
		if failures > 0 {
			failures--
			return nil, domain.ErrDuplicateMemberNo
		}
		m := reg.Member
		m.ID = 7
		return &m, nil
	}

	res, err := s.uc.Register(context.Background(), s.baseRequest(), nil)
	s.Require().NoError(err)
	s.Equal(3, s.repo.registerCalls)
	s.Equal("TST000003", res.MemberNo)
}

func (s *RegisterSuite) TestMemberNoCollisionExhaustion() {
	s.repo.registerFn = func(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
		return nil, domain.ErrDuplicateMemberNo
	}

	_, err := s.uc.Register(context.Background(), s.baseRequest(), nil)
	s.Require().ErrorIs(err, domain.ErrDuplicateMemberNo)
	s.Equal(memberNoAttempts, s.repo.registerCalls)
}

func (s *RegisterSuite) TestUnexpectedFailureIsPersistenceError() {
	s.repo.registerFn = func(ctx context.Context, reg *domain.Registration) (*domain.Member, error) {
		return nil, errors.New("connection reset")
	}

	staged := &domain.StagedAssets{ProfileImage: s.stageFile("face.png")}

	_, err := s.uc.Register(context.Background(), s.baseRequest(), staged)

	var pErr *domain.PersistenceError
	s.Require().ErrorAs(err, &pErr)
	s.Contains(pErr.Error(), "connection reset")
	s.NoFileExists(staged.ProfileImage)
}

func (s *RegisterSuite) TestGalleryAssetsAttachedInOrder() {
	staged := &domain.StagedAssets{
		Profiles: []domain.ProfileAssets{
			{Image: s.stageFile("logo0.jpg"), Gallery: []string{s.stageFile("a.jpg"), s.stageFile("b.mp4")}},
			{Gallery: []string{s.stageFile("c.mp4"), s.stageFile("d.jpg")}},
		},
	}

	req := s.baseRequest()
	req.BusinessProfiles = `[{"company_name":"Acme"},{"company_name":"Globex"}]`

	_, err := s.uc.Register(context.Background(), req, staged)
	s.Require().NoError(err)

	reg := s.repo.lastReg
	s.Require().Len(reg.Profiles, 2)
	s.Equal(domain.MediaTypeImage, reg.Profiles[0].MediaType)
	s.Equal(domain.MediaTypeVideo, reg.Profiles[1].MediaType)
	s.Len(reg.Profiles[0].MediaGallery, 2)
	s.NotEmpty(reg.Profiles[0].ProfileImage)
	s.Empty(reg.Profiles[1].ProfileImage)

	// Committed registrations keep their staged files.
	for _, p := range staged.All() {
		s.FileExists(p)
	}
}

func (s *RegisterSuite) TestFamilyShapingAtRegistration() {
	s.Run("single member loses spouse fields", func() {
		req := s.baseRequest()
		req.MaritalStatus = "single"
		req.FamilyDetails = `{"father_name":"Joe","spouse_name":"Sam","spouse_contact":"123","number_of_children":2,"children_names":["A","B"]}`

		_, err := s.uc.Register(context.Background(), req, nil)
		s.Require().NoError(err)

		fam := s.repo.lastReg.Family
		s.Require().NotNil(fam)
		s.Equal("Joe", fam.FatherName)
		s.Empty(fam.SpouseName)
		s.Empty(fam.SpouseContact)
		s.Zero(fam.NumberOfChildren)
		s.Empty(fam.ChildrenNames)
	})

	s.Run("married member keeps spouse and children", func() {
		req := s.baseRequest()
		req.MaritalStatus = " Married "
		req.FamilyDetails = `{"spouse_name":"Sam","number_of_children":2,"children_names":["A","B"]}`

		_, err := s.uc.Register(context.Background(), req, nil)
		s.Require().NoError(err)

		fam := s.repo.lastReg.Family
		s.Require().NotNil(fam)
		s.Equal("Sam", fam.SpouseName)
		s.Equal(2, fam.NumberOfChildren)
		s.Equal(domain.StringList{"A", "B"}, fam.ChildrenNames)
	})

	s.Run("empty family details persist nothing", func() {
		req := s.baseRequest()
		req.FamilyDetails = `{}`

		_, err := s.uc.Register(context.Background(), req, nil)
		s.Require().NoError(err)
		s.Nil(s.repo.lastReg.Family)
	})
}
