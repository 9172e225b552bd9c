package types

// Fixed ACPI Description Table (section 5.2.9)

// FADT layout sizes.
const (
	// FADTSize is the size of the ACPI 6.x FADT.
	FADTSize = 276

	// FADTMinSize is the smallest table that still carries the legacy
	// DSDT pointer.
	FADTMinSize = 44

	// FADTRev1Size is the size of the ACPI 1.0 FADT.
	FADTRev1Size = 116
)

// Byte offsets of the FADT fields, relative to the start of the table.
const (
	FADTFirmwareCtrlOffset       = 36
	FADTDsdtOffset               = 40
	FADTPreferredPMProfileOffset = 45
	FADTSCIInterruptOffset       = 46
	FADTSMICommandPortOffset     = 48
	FADTAcpiEnableOffset         = 52
	FADTAcpiDisableOffset        = 53
	FADTS4BIOSReqOffset          = 54
	FADTPStateControlOffset      = 55
	FADTPM1aEventBlockOffset     = 56
	FADTPM1bEventBlockOffset     = 60
	FADTPM1aControlBlockOffset   = 64
	FADTPM1bControlBlockOffset   = 68
	FADTPM2ControlBlockOffset    = 72
	FADTPMTimerBlockOffset       = 76
	FADTGPE0BlockOffset          = 80
	FADTGPE1BlockOffset          = 84
	FADTPM1EventLengthOffset     = 88
	FADTPM1ControlLengthOffset   = 89
	FADTPM2ControlLengthOffset   = 90
	FADTPMTimerLengthOffset      = 91
	FADTGPE0LengthOffset         = 92
	FADTGPE1LengthOffset         = 93
	FADTGPE1BaseOffset           = 94
	FADTCStateControlOffset      = 95
	FADTWorstC2LatencyOffset     = 96
	FADTWorstC3LatencyOffset     = 98
	FADTFlushSizeOffset          = 100
	FADTFlushStrideOffset        = 102
	FADTDutyOffsetOffset         = 104
	FADTDutyWidthOffset          = 105
	FADTDayAlarmOffset           = 106
	FADTMonthAlarmOffset         = 107
	FADTCenturyOffset            = 108
	FADTBootArchFlagsOffset      = 109
	FADTFlagsOffset              = 112
	FADTResetRegOffset           = 116
	FADTResetValueOffset         = 128
	FADTARMBootArchFlagsOffset   = 129
	FADTMinorVersionOffset       = 131
	FADTXFirmwareCtrlOffset      = 132
	FADTXDsdtOffset              = 140
	FADTXPM1aEventBlockOffset    = 148
	FADTXPM1bEventBlockOffset    = 160
	FADTXPM1aControlBlockOffset  = 172
	FADTXPM1bControlBlockOffset  = 184
	FADTXPM2ControlBlockOffset   = 196
	FADTXPMTimerBlockOffset      = 208
	FADTXGPE0BlockOffset         = 220
	FADTXGPE1BlockOffset         = 232
	FADTSleepControlRegOffset    = 244
	FADTSleepStatusRegOffset     = 256
	FADTHypervisorVendorIDOffset = 268
)

// PowerProfileType describes a power profile referenced by the FADT table.
type PowerProfileType uint8

// The list of supported power profile types
const (
	PowerProfileUnspecified PowerProfileType = iota
	PowerProfileDesktop
	PowerProfileMobile
	PowerProfileWorkstation
	PowerProfileEnterpriseServer
	PowerProfileSOHOServer
	PowerProfileAppliancePC
	PowerProfilePerformanceServer
	PowerProfileTablet
)

var powerProfileNames = []string{
	"Unspecified",
	"Desktop",
	"Mobile",
	"Workstation",
	"Enterprise Server",
	"SOHO Server",
	"Appliance PC",
	"Performance Server",
	"Tablet",
}

// String returns the human readable profile name.
func (p PowerProfileType) String() string {
	if int(p) < len(powerProfileNames) {
		return powerProfileNames[p]
	}
	return "Reserved"
}

// Fixed feature flags (section 5.2.9, table 5.10)
const (
	FADTFlagWBINVD                    uint32 = 1 << 0
	FADTFlagWBINVDFlush               uint32 = 1 << 1
	FADTFlagProcC1                    uint32 = 1 << 2
	FADTFlagPLvl2UP                   uint32 = 1 << 3
	FADTFlagPowerButton               uint32 = 1 << 4
	FADTFlagSleepButton               uint32 = 1 << 5
	FADTFlagFixedRTC                  uint32 = 1 << 6
	FADTFlagRTCS4                     uint32 = 1 << 7
	FADTFlagTimerValExt               uint32 = 1 << 8
	FADTFlagDockCap                   uint32 = 1 << 9
	FADTFlagResetRegSup               uint32 = 1 << 10
	FADTFlagSealedCase                uint32 = 1 << 11
	FADTFlagHeadless                  uint32 = 1 << 12
	FADTFlagCPUSWSleep                uint32 = 1 << 13
	FADTFlagPCIExpWak                 uint32 = 1 << 14
	FADTFlagUsePlatformClock          uint32 = 1 << 15
	FADTFlagS4RTCStsValid             uint32 = 1 << 16
	FADTFlagRemotePowerOnCapable      uint32 = 1 << 17
	FADTFlagForceAPICClusterModel     uint32 = 1 << 18
	FADTFlagForceAPICPhysicalDestMode uint32 = 1 << 19
	FADTFlagHWReducedACPI             uint32 = 1 << 20
	FADTFlagLowPowerS0IdleCapable     uint32 = 1 << 21
	FADTFlagPersistentCPUCaches       uint32 = 1 << 22
)

// IA-PC boot architecture flags (section 5.2.9.3, table 5.11)
const (
	BootArchLegacyDevices     uint16 = 1 << 0
	BootArch8042              uint16 = 1 << 1
	BootArchVGANotPresent     uint16 = 1 << 2
	BootArchMSINotSupported   uint16 = 1 << 3
	BootArchPCIeASPMControls  uint16 = 1 << 4
	BootArchCMOSRTCNotPresent uint16 = 1 << 5
)

// ARM boot architecture flags (section 5.2.9.4, table 5.12)
const (
	ARMBootArchPSCICompliant uint16 = 1 << 0
	ARMBootArchPSCIUseHVC    uint16 = 1 << 1
)

// FADT (Fixed ACPI Description Table) is an ACPI table containing information
// about fixed register blocks used for power management.
//
// Older firmware publishes shorter revisions of this table; fields beyond the
// published length are zero.
type FADT struct {
	SDTHeader

	FirmwareCtrl uint32
	Dsdt         uint32

	PreferredPowerManagementProfile PowerProfileType
	SCIInterrupt                    uint16
	SMICommandPort                  uint32
	AcpiEnable                      uint8
	AcpiDisable                     uint8
	S4BIOSReq                       uint8
	PStateControl                   uint8
	PM1aEventBlock                  uint32
	PM1bEventBlock                  uint32
	PM1aControlBlock                uint32
	PM1bControlBlock                uint32
	PM2ControlBlock                 uint32
	PMTimerBlock                    uint32
	GPE0Block                       uint32
	GPE1Block                       uint32
	PM1EventLength                  uint8
	PM1ControlLength                uint8
	PM2ControlLength                uint8
	PMTimerLength                   uint8
	GPE0Length                      uint8
	GPE1Length                      uint8
	GPE1Base                        uint8
	CStateControl                   uint8
	WorstC2Latency                  uint16
	WorstC3Latency                  uint16
	FlushSize                       uint16
	FlushStride                     uint16
	DutyOffset                      uint8
	DutyWidth                       uint8
	DayAlarm                        uint8
	MonthAlarm                      uint8
	Century                         uint8

	// Reserved in ACPI 1.0; used since ACPI 2.0+
	BootArchitectureFlags uint16

	Flags uint32

	ResetReg   GenericAddress
	ResetValue uint8

	ARMBootArchitectureFlags uint16
	MinorVersion             uint8

	// 64-bit pointers to the above structures used by ACPI 2.0+
	Ext FADT64

	SleepControlReg    GenericAddress
	SleepStatusReg     GenericAddress
	HypervisorVendorID uint64
}

// FADT64 contains the 64-bit FADT extensions which are used by ACPI2+
type FADT64 struct {
	FirmwareControl uint64

	Dsdt uint64

	PM1aEventBlock   GenericAddress
	PM1bEventBlock   GenericAddress
	PM1aControlBlock GenericAddress
	PM1bControlBlock GenericAddress
	PM2ControlBlock  GenericAddress
	PMTimerBlock     GenericAddress
	GPE0Block        GenericAddress
	GPE1Block        GenericAddress
}

// HasFlag reports whether the given fixed feature flag is set.
func (f FADT) HasFlag(flag uint32) bool {
	return f.Flags&flag != 0
}

// IsHardwareReduced reports whether the platform implements the ACPI
// hardware-reduced interface, in which case the fixed register blocks are
// absent.
func (f FADT) IsHardwareReduced() bool {
	return f.HasFlag(FADTFlagHWReducedACPI)
}

// HasBootArchFlag reports whether the given IA-PC boot architecture flag is set.
func (f FADT) HasBootArchFlag(flag uint16) bool {
	return f.BootArchitectureFlags&flag != 0
}
