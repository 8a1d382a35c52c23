package service

import (
	"github.com/mmynk/tutorbooks/internal/backoffice"
	"github.com/mmynk/tutorbooks/internal/storage"
	"github.com/mmynk/tutorbooks/pkg/api"
)

func factFilter(req *api.ListFactsRequest) (storage.FactFilter, error) {
	r, err := backoffice.ParseRange(req.StartDate, req.EndDate)
	if err != nil {
		return storage.FactFilter{}, err
	}
	return storage.FactFilter{
		StudentID: req.StudentID,
		CourseID:  req.CourseID,
		TeacherID: req.TeacherID,
		Range:     r,
	}, nil
}
