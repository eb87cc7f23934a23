package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"memberhub/domain"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	maxProfileImageSize = 5 << 20
	maxGalleryFileSize  = 30 << 20
	maxProfileSlots     = 5
	maxGalleryFiles     = 10
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".gif": true, ".webp": true, ".bmp": true,
}

var videoExts = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".wmv": true, ".mkv": true, ".webm": true, ".3gp": true,
}

var documentExts = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true, ".ppt": true, ".pptx": true,
}

type assetStager struct {
	baseDir string
	log     *logrus.Logger
}

func NewAssetStager(baseDir string, log *logrus.Logger) domain.AssetStager {
	return &assetStager{
		baseDir: baseDir,
		log:     log,
	}
}

// Stage writes every uploaded file of a registration form to content storage
// and returns the ordered association between business-profile slots and the
// stored paths. It runs to completion before orchestration starts; if any
// file is rejected, files already written for this request are removed.
func (as *assetStager) Stage(form *multipart.Form) (*domain.StagedAssets, error) {
	assets := &domain.StagedAssets{}

	if fh := firstFile(form, "profile_image"); fh != nil {
		path, err := as.saveImage(fh, "profile_images", maxProfileImageSize)
		if err != nil {
			return nil, err
		}
		assets.ProfileImage = path
	}

	for i := 0; i < maxProfileSlots; i++ {
		slot := domain.ProfileAssets{}

		if fh := firstFile(form, fmt.Sprintf("business_profile_image_%d", i)); fh != nil {
			path, err := as.saveImage(fh, "business_profiles", maxProfileImageSize)
			if err != nil {
				as.Cleanup(assets.All())
				return nil, err
			}
			slot.Image = path
		}

		gallery := form.File[fmt.Sprintf("media_gallery_%d", i)]
		if len(gallery) > maxGalleryFiles {
			assets.Profiles = append(assets.Profiles, slot)
			as.Cleanup(assets.All())
			return nil, domain.NewValidationError(fmt.Sprintf("media_gallery_%d: at most %d files allowed", i, maxGalleryFiles))
		}
		for _, fh := range gallery {
			path, err := as.saveGalleryFile(fh)
			if err != nil {
				assets.Profiles = append(assets.Profiles, slot)
				as.Cleanup(assets.All())
				return nil, err
			}
			slot.Gallery = append(slot.Gallery, path)
		}

		assets.Profiles = append(assets.Profiles, slot)
	}

	return assets, nil
}

// StageProfileSlot handles the single-profile upsert endpoint, which uses
// unindexed field names.
func (as *assetStager) StageProfileSlot(form *multipart.Form) (*domain.ProfileAssets, error) {
	slot := &domain.ProfileAssets{}

	if fh := firstFile(form, "business_profile_image"); fh != nil {
		path, err := as.saveImage(fh, "business_profiles", maxProfileImageSize)
		if err != nil {
			return nil, err
		}
		slot.Image = path
	}

	gallery := form.File["media_gallery"]
	if len(gallery) > maxGalleryFiles {
		as.cleanupSlot(slot)
		return nil, domain.NewValidationError(fmt.Sprintf("media_gallery: at most %d files allowed", maxGalleryFiles))
	}
	for _, fh := range gallery {
		path, err := as.saveGalleryFile(fh)
		if err != nil {
			as.cleanupSlot(slot)
			return nil, err
		}
		slot.Gallery = append(slot.Gallery, path)
	}

	return slot, nil
}

// Cleanup deletes staged files after a failed request. Deletion failures are
// logged and swallowed; they must never mask the original error.
func (as *assetStager) Cleanup(paths []string) {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			as.log.Warnf("cleanup: could not delete staged file %s: %v", p, err)
		}
	}
}

func (as *assetStager) cleanupSlot(slot *domain.ProfileAssets) {
	assets := domain.StagedAssets{Profiles: []domain.ProfileAssets{*slot}}
	as.Cleanup(assets.All())
}

func (as *assetStager) saveImage(fh *multipart.FileHeader, category string, limit int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] {
		return "", domain.NewValidationError(fmt.Sprintf("%s: file type %s not allowed", fh.Filename, ext))
	}
	if fh.Size > limit {
		return "", domain.NewValidationError(fmt.Sprintf("%s: file exceeds size limit", fh.Filename))
	}
	return as.save(fh, category)
}

func (as *assetStager) saveGalleryFile(fh *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !imageExts[ext] && !videoExts[ext] && !documentExts[ext] {
		return "", domain.NewValidationError(fmt.Sprintf("%s: file type %s not allowed", fh.Filename, ext))
	}
	if fh.Size > maxGalleryFileSize {
		return "", domain.NewValidationError(fmt.Sprintf("%s: file exceeds size limit", fh.Filename))
	}
	return as.save(fh, "media_gallery")
}

func (as *assetStager) save(fh *multipart.FileHeader, category string) (string, error) {
	dir := filepath.Join(as.baseDir, category)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("could not create upload directory: %v", err)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("could not open uploaded file: %v", err)
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(fh.Filename))
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("could not create staged file: %v", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("could not write staged file: %v", err)
	}

	return dstPath, nil
}

func firstFile(form *multipart.Form, key string) *multipart.FileHeader {
	files := form.File[key]
	if len(files) == 0 {
		return nil
	}
	return files[0]
}
