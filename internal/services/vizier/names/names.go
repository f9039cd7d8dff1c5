// Package names formats and parses the resource names used by the Vizier API.
package names

import (
	"fmt"

	"go.einride.tech/aip/resourcename"
)

const (
	ownerPattern = "owners/{owner}"
	studyPattern = "owners/{owner}/studies/{study}"
	trialPattern = "owners/{owner}/studies/{study}/trials/{trial}"
)

// FormatOwner returns the owner collection name for an owner ID.
func FormatOwner(owner string) string {
	return resourcename.Sprint(ownerPattern, owner)
}

// ParseOwner extracts the owner ID from an owner collection name.
func ParseOwner(name string) (string, error) {
	var owner string
	if err := resourcename.Sscan(name, ownerPattern, &owner); err != nil {
		return "", fmt.Errorf("parse owner name %q: %w", name, err)
	}
	return owner, nil
}

// FormatStudy returns the study resource name for an owner and study ID.
func FormatStudy(owner, study string) string {
	return resourcename.Sprint(studyPattern, owner, study)
}

// ParseStudy extracts the owner and study IDs from a study resource name.
func ParseStudy(name string) (owner, study string, err error) {
	if err := resourcename.Sscan(name, studyPattern, &owner, &study); err != nil {
		return "", "", fmt.Errorf("parse study name %q: %w", name, err)
	}
	return owner, study, nil
}

// FormatTrial returns the trial resource name within a study.
func FormatTrial(studyName string, trialID int64) string {
	return fmt.Sprintf("%s/trials/%d", studyName, trialID)
}

// ParseTrial extracts the owner, study and trial IDs from a trial resource name.
func ParseTrial(name string) (owner, study, trial string, err error) {
	if err := resourcename.Sscan(name, trialPattern, &owner, &study, &trial); err != nil {
		return "", "", "", fmt.Errorf("parse trial name %q: %w", name, err)
	}
	return owner, study, trial, nil
}

// StudyOfTrial returns the parent study resource name of a trial name.
func StudyOfTrial(name string) (string, error) {
	owner, study, _, err := ParseTrial(name)
	if err != nil {
		return "", err
	}
	return FormatStudy(owner, study), nil
}
