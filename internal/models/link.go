package models

import "strings"

// Archive categories. The set is closed; the AI analyzer picks one of these
// and anything it invents outside the set is clamped to CategoryOther.
const (
	CategoryIT    = "IT/개발"
	CategoryNews  = "뉴스"
	CategoryStudy = "공부"
	CategoryHobby = "취미"
	CategoryOther = "기타"
)

// Categories lists all valid archive categories.
var Categories = []string{CategoryIT, CategoryNews, CategoryStudy, CategoryHobby, CategoryOther}

// IsValidCategory reports whether label is one of the known categories.
func IsValidCategory(label string) bool {
	for _, c := range Categories {
		if c == label {
			return true
		}
	}
	return false
}

// FileURLPrefix marks items created from uploaded files instead of URLs.
const FileURLPrefix = "FILE: "

// LinkModel is a single archived link or uploaded document.
type LinkModel struct {
	Base
	UserID   string `json:"user_id"  gorm:"index"`
	URL      string `json:"url"      gorm:"not null"`
	Title    string `json:"title"`
	Summary  string `json:"summary"  gorm:"type:text"`
	Content  string `json:"content"  gorm:"type:text"`
	Memo     string `json:"memo"     gorm:"type:text"`
	Category string `json:"category"`
	Tags     string `json:"tags"` // comma-joined keyword list

	Messages []ChatMessageModel `json:"-" gorm:"foreignKey:LinkID;constraint:OnDelete:CASCADE"`
}

func (LinkModel) TableName() string { return "links" }

// IsFile reports whether the item was created from an uploaded file.
func (l *LinkModel) IsFile() bool { return strings.HasPrefix(l.URL, FileURLPrefix) }
