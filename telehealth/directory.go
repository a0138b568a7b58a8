package telehealth

import (
	"context"
	"errors"
	"strings"

	"github.com/ariebrainware/healthghar/apperror"
	"github.com/ariebrainware/healthghar/model"
	"github.com/ariebrainware/healthghar/store"
	"github.com/ariebrainware/healthghar/util"
)

var ErrDoctorNotFound = apperror.NotFound("Doctor not found")

// DoctorFilter narrows the directory. Empty fields match everything.
type DoctorFilter struct {
	Category       string
	Specialization string
}

// Taxonomy is the fixed doctor classification plus report departments.
type Taxonomy struct {
	Categories  []model.Category `json:"categories"`
	Departments []string         `json:"departments"`
}

// Directory serves the public read side: doctors, their active slots and
// the catalogs.
type Directory struct {
	backend store.Backend
	slots   *SlotStore
}

func NewDirectory(backend store.Backend) *Directory {
	return &Directory{backend: backend, slots: NewSlotStore(backend)}
}

func (d *Directory) Taxonomy() Taxonomy {
	return Taxonomy{Categories: model.Categories, Departments: model.Departments}
}

// Doctors lists doctors by name, matching category and specialization exactly when given.
func (d *Directory) Doctors(ctx context.Context, f DoctorFilter) ([]model.Doctor, error) {
	f.Category = strings.TrimSpace(f.Category)
	f.Specialization = strings.TrimSpace(f.Specialization)

	unfiltered := f.Category == "" && f.Specialization == ""
	if unfiltered {
		if v, ok := util.CachedView(util.ViewDoctorDirectory); ok {
			if docs, ok := v.([]model.Doctor); ok {
				return docs, nil
			}
		}
	}

	q := store.Where()
	if f.Category != "" {
		q.Filters = append(q.Filters, store.Eq("category", f.Category))
	}
	if f.Specialization != "" {
		q.Filters = append(q.Filters, store.Eq("specialization", f.Specialization))
	}

	docs := []model.Doctor{}
	if err := d.backend.Find(ctx, &model.Doctor{}, q.OrderBy("name"), &docs); err != nil {
		logStoreError(err, "list", model.Doctor{}.TableName())
		return nil, apperror.Persistence("Failed to load doctors", err)
	}
	if unfiltered {
		util.CacheView(util.ViewDoctorDirectory, docs)
	}
	return docs, nil
}

func (d *Directory) Doctor(ctx context.Context, id string) (model.Doctor, error) {
	var doc model.Doctor
	err := d.backend.First(ctx, store.Where(store.Eq("id", id)), &doc)
	if errors.Is(err, store.ErrNotFound) {
		return model.Doctor{}, ErrDoctorNotFound
	}
	if err != nil {
		logStoreError(err, "get", doc.TableName())
		return model.Doctor{}, apperror.Persistence("Failed to load doctor", err)
	}
	return doc, nil
}

// DoctorSlots lists the active slots of a doctor, earliest first.
func (d *Directory) DoctorSlots(ctx context.Context, doctorID string) ([]model.Slot, error) {
	key := util.ViewDoctorSlots(doctorID)
	if v, ok := util.CachedView(key); ok {
		if slots, ok := v.([]model.Slot); ok {
			return slots, nil
		}
	}
	slots, err := d.slots.ListActive(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	util.CacheView(key, slots)
	return slots, nil
}

// Camps lists upcoming camps by date.
func (d *Directory) Camps(ctx context.Context) ([]model.Camp, error) {
	camps := []model.Camp{}
	if err := d.backend.Find(ctx, &model.Camp{}, store.Where().OrderBy("camp_date"), &camps); err != nil {
		logStoreError(err, "list", model.Camp{}.TableName())
		return nil, apperror.Persistence("Failed to load camps", err)
	}
	return camps, nil
}

// Packages lists home checkup packages, cheapest first.
func (d *Directory) Packages(ctx context.Context) ([]model.HomeCheckupPackage, error) {
	pkgs := []model.HomeCheckupPackage{}
	if err := d.backend.Find(ctx, &model.HomeCheckupPackage{}, store.Where().OrderBy("price"), &pkgs); err != nil {
		logStoreError(err, "list", model.HomeCheckupPackage{}.TableName())
		return nil, apperror.Persistence("Failed to load packages", err)
	}
	return pkgs, nil
}
