package models

// User 儀表板登入帳號，僅由啟動時的 seed 步驟建立
type User struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username string `json:"username" gorm:"type:varchar(50);not null;uniqueIndex"`
	Password string `json:"-" gorm:"type:varchar(100);not null"` // bcrypt 雜湊
}

// TableName 指定表名
func (User) TableName() string {
	return "users"
}
