package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/bytedance/sonic"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"

	AccessBasic    = "basic"
	AccessAdvanced = "advanced"

	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// StringList is stored as a JSON array in a text column. Used for media
// galleries and children names.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	b, err := sonic.Marshal([]string(l))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src interface{}) error {
	if src == nil {
		*l = nil
		return nil
	}

	var raw []byte
	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StringList", src)
	}

	if len(raw) == 0 {
		*l = nil
		return nil
	}

	return sonic.Unmarshal(raw, (*[]string)(l))
}

// JSON returns the serialized form written by the pgx-based repositories.
// Empty lists report ok=false so callers can write NULL instead.
func (l StringList) JSON() (string, bool, error) {
	if len(l) == 0 {
		return "", false, nil
	}
	b, err := sonic.Marshal([]string(l))
	if err != nil {
		return "", false, err
	}
	return string(b), true, nil
}
