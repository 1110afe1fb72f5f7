package bump

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Tomas-vilte/conventionalish/internal/domain/models"
	domainErrors "github.com/Tomas-vilte/conventionalish/internal/errors"
	"github.com/Tomas-vilte/conventionalish/internal/regex"
	"golang.org/x/mod/semver"
)

const initialVersion = "v0.0.0"

// NextVersion applies level to current. An empty current starts from v0.0.0,
// NoBump returns current untouched, and the "v" prefix is kept as given.
// Pre-release and build metadata are dropped on a bump.
func NextVersion(current string, level models.BumpLevel) (string, error) {
	if current == "" {
		current = initialVersion
	}
	if err := ValidateVersion(current); err != nil {
		return "", err
	}
	if level == models.NoBump {
		return current, nil
	}

	matches := regex.SemVer.FindStringSubmatch(current)
	prefix := matches[1]
	major, _ := strconv.Atoi(matches[2])
	minor, _ := strconv.Atoi(matches[3])
	patch, _ := strconv.Atoi(matches[4])

	switch level {
	case models.MajorBump:
		major++
		minor = 0
		patch = 0
	case models.MinorBump:
		minor++
		patch = 0
	case models.PatchBump:
		patch++
	}

	next := fmt.Sprintf("%s%d.%d.%d", prefix, major, minor, patch)
	if err := validateVersionIncrement(current, next); err != nil {
		return "", err
	}
	return next, nil
}

// ValidateVersion checks versionStr is semver with or without the v prefix.
func ValidateVersion(versionStr string) error {
	if !regex.SemVer.MatchString(versionStr) || !semver.IsValid(canonical(versionStr)) {
		return domainErrors.ErrInvalidVersion.WithContext("version", versionStr)
	}
	return nil
}

func validateVersionIncrement(oldVersion, newVersion string) error {
	if semver.Compare(canonical(oldVersion), canonical(newVersion)) >= 0 {
		return domainErrors.NewAppError(domainErrors.TypeVersion,
			fmt.Sprintf("new version %s must be greater than previous version %s", newVersion, oldVersion), nil)
	}
	return nil
}

func canonical(v string) string {
	return "v" + strings.TrimPrefix(v, "v")
}
