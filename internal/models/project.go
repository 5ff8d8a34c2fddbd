package models

// Project represents a portfolio project as listed in projects.json.
// Records are read-only: they are decoded once per render and never written back.
type Project struct {
	Title string `json:"title" validate:"required"`
	Tag   string `json:"tag"`
	Img   string `json:"img" validate:"imgsrc"`
	Repo  string `json:"repo" validate:"href"`
	Live  string `json:"live" validate:"href"`
}
