package matching

import (
	"encoding/json"
	"fmt"
)

type residentsFile struct {
	Preferences []struct {
		Name        string   `json:"Name"`
		Preferences []string `json:"Preferences"`
	} `json:"Preferences"`
}

type hospitalsFile struct {
	Hospitals []struct {
		Program     string   `json:"Program"`
		Preferences []string `json:"Preferences"`
		Capacity    int      `json:"Capacity"`
	} `json:"Hospitals"`
}

// ParseResidents decodes a resident preferences document.
func ParseResidents(data []byte) (ResidentPreferences, error) {
	var doc residentsFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode resident preferences: %w", err)
	}

	prefs := make(ResidentPreferences, len(doc.Preferences))
	for _, item := range doc.Preferences {
		if item.Name == "" {
			return nil, fmt.Errorf("decode resident preferences: entry without name")
		}
		prefs[item.Name] = item.Preferences
	}
	return prefs, nil
}

// ParseHospitals decodes a hospital preferences document with capacities.
func ParseHospitals(data []byte) (HospitalPreferences, Capacities, error) {
	var doc hospitalsFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("decode hospital preferences: %w", err)
	}

	prefs := make(HospitalPreferences, len(doc.Hospitals))
	caps := make(Capacities, len(doc.Hospitals))
	for _, item := range doc.Hospitals {
		if item.Program == "" {
			return nil, nil, fmt.Errorf("decode hospital preferences: entry without program")
		}
		prefs[item.Program] = item.Preferences
		caps[item.Program] = item.Capacity
	}
	return prefs, caps, nil
}
