package pkgmap

// Family is a coarse grouping of related distributions, used to select the
// family tier of a mapping document.
type Family string

const (
	FamilyRedhat Family = "redhat"
	FamilyDebian Family = "debian"
	FamilyOracle Family = "oracle"
	FamilySuse   Family = "suse"
	FamilyGentoo Family = "gentoo"

	// FamilyNone is returned for distros with no known family. The family
	// tier contributes nothing in that case.
	FamilyNone Family = ""
)

var distroFamilies = map[string]Family{
	"fedora":      FamilyRedhat,
	"centos":      FamilyRedhat,
	"centos7":     FamilyRedhat,
	"rhel":        FamilyRedhat,
	"rhel7":       FamilyRedhat,
	"debian":      FamilyDebian,
	"ubuntu":      FamilyDebian,
	"oraclelinux": FamilyOracle,
	"opensuse":    FamilySuse,
	"sles":        FamilySuse,
	"gentoo":      FamilyGentoo,
}

// FamilyOf returns the OS family for a distro identifier, or FamilyNone when
// the distro is not classified.
func FamilyOf(distro string) Family {
	return distroFamilies[distro]
}
