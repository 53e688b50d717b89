package models

type User struct {
	ID       int    `json:"id" firestore:"id"`
	Username string `json:"username" firestore:"username"`
	Password string `json:"-" firestore:"password"` // bcrypt hash, never serialized
}
