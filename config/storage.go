package config

import "os"

// GetUploadDir is where the asset stager writes incoming files. Each file
// category gets its own subfolder underneath it.
func GetUploadDir() string {
	v := os.Getenv("UPLOAD_DIR")
	if v == "" {
		return "./uploads"
	}
	return v
}

// GetMemberNoPrefix is the leading segment of generated member numbers.
func GetMemberNoPrefix() string {
	v := os.Getenv("MEMBER_NO_PREFIX")
	if v == "" {
		return "MBR"
	}
	return v
}
