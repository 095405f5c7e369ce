package storage

import "sort"

// In memory implementation of Storage below

type MemoryStorage struct {
	Timetables map[string]*Timetable
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		Timetables: map[string]*Timetable{},
	}
}

func (s *MemoryStorage) ListRoutes() ([]string, error) {
	routes := []string{}
	for route := range s.Timetables {
		routes = append(routes, route)
	}

	sort.Strings(routes)

	return routes, nil
}

func (s *MemoryStorage) ReadTimetable(route string) (*Timetable, error) {
	tt, found := s.Timetables[route]
	if !found {
		return nil, ErrNotFound
	}

	return tt, nil
}

func (s *MemoryStorage) WriteTimetable(tt *Timetable) error {
	s.Timetables[tt.Route] = tt

	return nil
}

func (s *MemoryStorage) DeleteTimetable(route string) error {
	if _, found := s.Timetables[route]; !found {
		return ErrNotFound
	}

	delete(s.Timetables, route)

	return nil
}

func (s *MemoryStorage) Close() error {
	return nil
}
