package handlers

import (
	"log"
	"net/http"

	"concrete-booking-service/internal/api/dto"
	"concrete-booking-service/internal/ports"
)

// SiteHandler exposes the read-only project/site registry.
type SiteHandler struct {
	Dir ports.SiteDirectory
}

func (h *SiteHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	sites, err := h.Dir.ListSites(r.Context())
	if err != nil {
		log.Printf("list sites failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListSitesResponse{Sites: make([]dto.SiteResponse, 0, len(sites))}
	for _, s := range sites {
		site := dto.SiteResponse{SiteID: string(s.ID), Name: s.Name}
		if s.Coords != nil {
			lat, lon := s.Coords.Lat, s.Coords.Lon
			site.Lat, site.Lon = &lat, &lon
		}
		res.Sites = append(res.Sites, site)
	}

	writeJSON(w, r, http.StatusOK, res)
}
