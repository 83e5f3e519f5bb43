package astral

const (
	UDPHolePunchConnectorServiceID uint32 = 2
	WinServiceWorkDirRegKey               = "SOFTWARE\\EasyTier\\Service\\WorkDir"

	PackageVersion = "2.4.5" // easytier release this build tracks
	VersionSuffix  = "-Astral"
	Version        = PackageVersion + VersionSuffix
)
