package v16

// Action identifies the remote procedure named by a CALL message.
type Action string

// All actions defined by OCPP 1.6, including the extensions from the
// security whitepaper.
const (
	ActionAuthorize                        Action = "Authorize"
	ActionBootNotification                 Action = "BootNotification"
	ActionCancelReservation                Action = "CancelReservation"
	ActionCertificateSigned                Action = "CertificateSigned"
	ActionChangeAvailability               Action = "ChangeAvailability"
	ActionChangeConfiguration              Action = "ChangeConfiguration"
	ActionClearCache                       Action = "ClearCache"
	ActionClearChargingProfile             Action = "ClearChargingProfile"
	ActionDataTransfer                     Action = "DataTransfer"
	ActionDeleteCertificate                Action = "DeleteCertificate"
	ActionDiagnosticsStatusNotification    Action = "DiagnosticsStatusNotification"
	ActionExtendedTriggerMessage           Action = "ExtendedTriggerMessage"
	ActionFirmwareStatusNotification       Action = "FirmwareStatusNotification"
	ActionGetCompositeSchedule             Action = "GetCompositeSchedule"
	ActionGetConfiguration                 Action = "GetConfiguration"
	ActionGetDiagnostics                   Action = "GetDiagnostics"
	ActionGetInstalledCertificateIds       Action = "GetInstalledCertificateIds"
	ActionGetLocalListVersion              Action = "GetLocalListVersion"
	ActionGetLog                           Action = "GetLog"
	ActionHeartbeat                        Action = "Heartbeat"
	ActionInstallCertificate               Action = "InstallCertificate"
	ActionLogStatusNotification            Action = "LogStatusNotification"
	ActionMeterValues                      Action = "MeterValues"
	ActionRemoteStartTransaction           Action = "RemoteStartTransaction"
	ActionRemoteStopTransaction            Action = "RemoteStopTransaction"
	ActionReserveNow                       Action = "ReserveNow"
	ActionReset                            Action = "Reset"
	ActionSecurityEventNotification        Action = "SecurityEventNotification"
	ActionSendLocalList                    Action = "SendLocalList"
	ActionSetChargingProfile               Action = "SetChargingProfile"
	ActionSignCertificate                  Action = "SignCertificate"
	ActionSignedFirmwareStatusNotification Action = "SignedFirmwareStatusNotification"
	ActionSignedUpdateFirmware             Action = "SignedUpdateFirmware"
	ActionStartTransaction                 Action = "StartTransaction"
	ActionStatusNotification               Action = "StatusNotification"
	ActionStopTransaction                  Action = "StopTransaction"
	ActionTriggerMessage                   Action = "TriggerMessage"
	ActionUnlockConnector                  Action = "UnlockConnector"
	ActionUpdateFirmware                   Action = "UpdateFirmware"
)

var actions = map[Action]struct{}{
	ActionAuthorize:                        {},
	ActionBootNotification:                 {},
	ActionCancelReservation:                {},
	ActionCertificateSigned:                {},
	ActionChangeAvailability:               {},
	ActionChangeConfiguration:              {},
	ActionClearCache:                       {},
	ActionClearChargingProfile:             {},
	ActionDataTransfer:                     {},
	ActionDeleteCertificate:                {},
	ActionDiagnosticsStatusNotification:    {},
	ActionExtendedTriggerMessage:           {},
	ActionFirmwareStatusNotification:       {},
	ActionGetCompositeSchedule:             {},
	ActionGetConfiguration:                 {},
	ActionGetDiagnostics:                   {},
	ActionGetInstalledCertificateIds:       {},
	ActionGetLocalListVersion:              {},
	ActionGetLog:                           {},
	ActionHeartbeat:                        {},
	ActionInstallCertificate:               {},
	ActionLogStatusNotification:            {},
	ActionMeterValues:                      {},
	ActionRemoteStartTransaction:           {},
	ActionRemoteStopTransaction:            {},
	ActionReserveNow:                       {},
	ActionReset:                            {},
	ActionSecurityEventNotification:        {},
	ActionSendLocalList:                    {},
	ActionSetChargingProfile:               {},
	ActionSignCertificate:                  {},
	ActionSignedFirmwareStatusNotification: {},
	ActionSignedUpdateFirmware:             {},
	ActionStartTransaction:                 {},
	ActionStatusNotification:               {},
	ActionStopTransaction:                  {},
	ActionTriggerMessage:                   {},
	ActionUnlockConnector:                  {},
	ActionUpdateFirmware:                   {},
}

// Valid reports whether a is an action defined by OCPP 1.6.
func (a Action) Valid() bool {
	_, ok := actions[a]
	return ok
}

func (a Action) String() string { return string(a) }

// AuthorizationStatus is the status of an idTag in Authorize.conf,
// StartTransaction.conf and StopTransaction.conf.
type AuthorizationStatus string

const (
	AuthorizationAccepted     AuthorizationStatus = "Accepted"
	AuthorizationBlocked      AuthorizationStatus = "Blocked"
	AuthorizationExpired      AuthorizationStatus = "Expired"
	AuthorizationInvalid      AuthorizationStatus = "Invalid"
	AuthorizationConcurrentTx AuthorizationStatus = "ConcurrentTx"
)

// AvailabilityType is the availability requested by ChangeAvailability.req.
type AvailabilityType string

const (
	AvailabilityInoperative AvailabilityType = "Inoperative"
	AvailabilityOperative   AvailabilityType = "Operative"
)

// AvailabilityStatus is returned in ChangeAvailability.conf.
type AvailabilityStatus string

const (
	AvailabilityStatusAccepted  AvailabilityStatus = "Accepted"
	AvailabilityStatusRejected  AvailabilityStatus = "Rejected"
	AvailabilityStatusScheduled AvailabilityStatus = "Scheduled"
)

// ChargePointErrorCode is reported in StatusNotification.req.
type ChargePointErrorCode string

const (
	ErrorCodeConnectorLockFailure ChargePointErrorCode = "ConnectorLockFailure"
	ErrorCodeEVCommunicationError ChargePointErrorCode = "EVCommunicationError"
	ErrorCodeGroundFailure        ChargePointErrorCode = "GroundFailure"
	ErrorCodeHighTemperature      ChargePointErrorCode = "HighTemperature"
	ErrorCodeInternalError        ChargePointErrorCode = "InternalError"
	ErrorCodeLocalListConflict    ChargePointErrorCode = "LocalListConflict"
	ErrorCodeNoError              ChargePointErrorCode = "NoError"
	ErrorCodeOtherError           ChargePointErrorCode = "OtherError"
	ErrorCodeOverCurrentFailure   ChargePointErrorCode = "OverCurrentFailure"
	ErrorCodeOverVoltage          ChargePointErrorCode = "OverVoltage"
	ErrorCodePowerMeterFailure    ChargePointErrorCode = "PowerMeterFailure"
	ErrorCodePowerSwitchFailure   ChargePointErrorCode = "PowerSwitchFailure"
	ErrorCodeReaderFailure        ChargePointErrorCode = "ReaderFailure"
	ErrorCodeResetFailure         ChargePointErrorCode = "ResetFailure"
	ErrorCodeUnderVoltage         ChargePointErrorCode = "UnderVoltage"
	ErrorCodeWeakSignal           ChargePointErrorCode = "WeakSignal"
)

// ChargePointStatus is reported in StatusNotification.req. The main
// controller (connectorId 0) only reports Available, Unavailable or
// Faulted.
type ChargePointStatus string

const (
	StatusAvailable     ChargePointStatus = "Available"
	StatusPreparing     ChargePointStatus = "Preparing"
	StatusCharging      ChargePointStatus = "Charging"
	StatusSuspendedEVSE ChargePointStatus = "SuspendedEVSE"
	StatusSuspendedEV   ChargePointStatus = "SuspendedEV"
	StatusFinishing     ChargePointStatus = "Finishing"
	StatusReserved      ChargePointStatus = "Reserved"
	StatusUnavailable   ChargePointStatus = "Unavailable"
	StatusFaulted       ChargePointStatus = "Faulted"
)

// ChargingProfileKind describes how the schedule periods of a charging
// profile are anchored in time.
type ChargingProfileKind string

const (
	ChargingProfileKindAbsolute  ChargingProfileKind = "Absolute"
	ChargingProfileKindRecurring ChargingProfileKind = "Recurring"
	ChargingProfileKindRelative  ChargingProfileKind = "Relative"
)

// ChargingProfilePurpose distinguishes station-wide limits, transaction
// defaults and transaction-specific profiles in SetChargingProfile.req.
type ChargingProfilePurpose string

const (
	ChargePointMaxProfile ChargingProfilePurpose = "ChargePointMaxProfile"
	TxDefaultProfile      ChargingProfilePurpose = "TxDefaultProfile"
	TxProfile             ChargingProfilePurpose = "TxProfile"
)

// ChargingProfileStatus is returned in SetChargingProfile.conf.
type ChargingProfileStatus string

const (
	ChargingProfileAccepted     ChargingProfileStatus = "Accepted"
	ChargingProfileRejected     ChargingProfileStatus = "Rejected"
	ChargingProfileNotSupported ChargingProfileStatus = "NotSupported"
)

// ChargingRateUnit is the unit a charging schedule is expressed in.
type ChargingRateUnit string

const (
	ChargingRateWatts ChargingRateUnit = "W"
	ChargingRateAmps  ChargingRateUnit = "A"
)

// DataTransferStatus is returned in DataTransfer.conf.
type DataTransferStatus string

const (
	DataTransferAccepted         DataTransferStatus = "Accepted"
	DataTransferRejected         DataTransferStatus = "Rejected"
	DataTransferUnknownMessageID DataTransferStatus = "UnknownMessageId"
	DataTransferUnknownVendorID  DataTransferStatus = "UnknownVendorId"
)

// DiagnosticsStatus is reported in DiagnosticsStatusNotification.req.
type DiagnosticsStatus string

const (
	DiagnosticsIdle         DiagnosticsStatus = "Idle"
	DiagnosticsUploaded     DiagnosticsStatus = "Uploaded"
	DiagnosticsUploadFailed DiagnosticsStatus = "UploadFailed"
	DiagnosticsUploading    DiagnosticsStatus = "Uploading"
)

// FirmwareStatus is reported in FirmwareStatusNotification.req and
// SignedFirmwareStatusNotification.req.
type FirmwareStatus string

const (
	FirmwareDownloaded          FirmwareStatus = "Downloaded"
	FirmwareDownloadFailed      FirmwareStatus = "DownloadFailed"
	FirmwareDownloading         FirmwareStatus = "Downloading"
	FirmwareIdle                FirmwareStatus = "Idle"
	FirmwareInstallationFailed  FirmwareStatus = "InstallationFailed"
	FirmwareInstalling          FirmwareStatus = "Installing"
	FirmwareInstalled           FirmwareStatus = "Installed"
	FirmwareDownloadScheduled   FirmwareStatus = "DownloadScheduled"
	FirmwareDownloadPaused      FirmwareStatus = "DownloadPaused"
	FirmwareInstallRebooting    FirmwareStatus = "InstallRebooting"
	FirmwareInstallScheduled    FirmwareStatus = "InstallScheduled"
	FirmwareInstallVerifyFailed FirmwareStatus = "InstallVerificationFailed"
	FirmwareInvalidSignature    FirmwareStatus = "InvalidSignature"
	FirmwareSignatureVerified   FirmwareStatus = "SignatureVerified"
)

// Location is the physical position a sampled value was measured at.
type Location string

const (
	LocationInlet  Location = "Inlet"
	LocationOutlet Location = "Outlet"
	LocationBody   Location = "Body"
	LocationCable  Location = "Cable"
	LocationEV     Location = "EV"
)

// Measurand names the quantity a sampled value represents. The default
// measurand is Energy.Active.Import.Register.
type Measurand string

const (
	MeasurandCurrentExport                Measurand = "Current.Export"
	MeasurandCurrentImport                Measurand = "Current.Import"
	MeasurandCurrentOffered               Measurand = "Current.Offered"
	MeasurandEnergyActiveExportRegister   Measurand = "Energy.Active.Export.Register"
	MeasurandEnergyActiveImportRegister   Measurand = "Energy.Active.Import.Register"
	MeasurandEnergyReactiveExportRegister Measurand = "Energy.Reactive.Export.Register"
	MeasurandEnergyReactiveImportRegister Measurand = "Energy.Reactive.Import.Register"
	MeasurandEnergyActiveExportInterval   Measurand = "Energy.Active.Export.Interval"
	MeasurandEnergyActiveImportInterval   Measurand = "Energy.Active.Import.Interval"
	MeasurandEnergyReactiveExportInterval Measurand = "Energy.Reactive.Export.Interval"
	MeasurandEnergyReactiveImportInterval Measurand = "Energy.Reactive.Import.Interval"
	MeasurandFrequency                    Measurand = "Frequency"
	MeasurandPowerActiveExport            Measurand = "Power.Active.Export"
	MeasurandPowerActiveImport            Measurand = "Power.Active.Import"
	MeasurandPowerFactor                  Measurand = "Power.Factor"
	MeasurandPowerOffered                 Measurand = "Power.Offered"
	MeasurandPowerReactiveExport          Measurand = "Power.Reactive.Export"
	MeasurandPowerReactiveImport          Measurand = "Power.Reactive.Import"
	MeasurandRPM                          Measurand = "RPM"
	MeasurandSoC                          Measurand = "SoC"
	MeasurandTemperature                  Measurand = "Temperature"
	MeasurandVoltage                      Measurand = "Voltage"
)

// MessageTrigger is the request type asked for by TriggerMessage.req or
// ExtendedTriggerMessage.req.
type MessageTrigger string

const (
	TriggerBootNotification              MessageTrigger = "BootNotification"
	TriggerDiagnosticsStatusNotification MessageTrigger = "DiagnosticsStatusNotification"
	TriggerFirmwareStatusNotification    MessageTrigger = "FirmwareStatusNotification"
	TriggerHeartbeat                     MessageTrigger = "Heartbeat"
	TriggerLogStatusNotification         MessageTrigger = "LogStatusNotification"
	TriggerMeterValues                   MessageTrigger = "MeterValues"
	TriggerSignCertificate               MessageTrigger = "SignChargePointCertificate"
	TriggerStatusNotification            MessageTrigger = "StatusNotification"
)

// Phase qualifies which electrical phase a sampled value applies to.
type Phase string

const (
	PhaseL1   Phase = "L1"
	PhaseL2   Phase = "L2"
	PhaseL3   Phase = "L3"
	PhaseN    Phase = "N"
	PhaseL1N  Phase = "L1-N"
	PhaseL2N  Phase = "L2-N"
	PhaseL3N  Phase = "L3-N"
	PhaseL1L2 Phase = "L1-L2"
	PhaseL2L3 Phase = "L2-L3"
	PhaseL3L1 Phase = "L3-L1"
)

// ReadingContext states the circumstances a sampled value was taken in.
type ReadingContext string

const (
	ContextInterruptionBegin ReadingContext = "Interruption.Begin"
	ContextInterruptionEnd   ReadingContext = "Interruption.End"
	ContextOther             ReadingContext = "Other"
	ContextSampleClock       ReadingContext = "Sample.Clock"
	ContextSamplePeriodic    ReadingContext = "Sample.Periodic"
	ContextTransactionBegin  ReadingContext = "Transaction.Begin"
	ContextTransactionEnd    ReadingContext = "Transaction.End"
	ContextTrigger           ReadingContext = "Trigger"
)

// Reason explains why a transaction stopped, as sent in
// StopTransaction.req.
type Reason string

const (
	ReasonEmergencyStop  Reason = "EmergencyStop"
	ReasonEVDisconnected Reason = "EVDisconnected"
	ReasonHardReset      Reason = "HardReset"
	ReasonLocal          Reason = "Local"
	ReasonOther          Reason = "Other"
	ReasonPowerLoss      Reason = "PowerLoss"
	ReasonReboot         Reason = "Reboot"
	ReasonRemote         Reason = "Remote"
	ReasonSoftReset      Reason = "SoftReset"
	ReasonUnlockCommand  Reason = "UnlockCommand"
	ReasonDeAuthorized   Reason = "DeAuthorized"
)

// RecurrencyKind restarts a recurring charging schedule daily or weekly.
type RecurrencyKind string

const (
	RecurrencyDaily  RecurrencyKind = "Daily"
	RecurrencyWeekly RecurrencyKind = "Weekly"
)

// RegistrationStatus is the result of BootNotification.req.
type RegistrationStatus string

const (
	RegistrationAccepted RegistrationStatus = "Accepted"
	RegistrationPending  RegistrationStatus = "Pending"
	RegistrationRejected RegistrationStatus = "Rejected"
)

// RemoteStartStopStatus is the result of RemoteStartTransaction.req or
// RemoteStopTransaction.req.
type RemoteStartStopStatus string

const (
	RemoteStartStopAccepted RemoteStartStopStatus = "Accepted"
	RemoteStartStopRejected RemoteStartStopStatus = "Rejected"
)

// ReservationStatus is returned in ReserveNow.conf.
type ReservationStatus string

const (
	ReservationAccepted    ReservationStatus = "Accepted"
	ReservationFaulted     ReservationStatus = "Faulted"
	ReservationOccupied    ReservationStatus = "Occupied"
	ReservationRejected    ReservationStatus = "Rejected"
	ReservationUnavailable ReservationStatus = "Unavailable"
)

// ResetType selects a hard or soft reset in Reset.req.
type ResetType string

const (
	ResetTypeHard ResetType = "Hard"
	ResetTypeSoft ResetType = "Soft"
)

// ResetStatus is the result of Reset.req.
type ResetStatus string

const (
	ResetAccepted ResetStatus = "Accepted"
	ResetRejected ResetStatus = "Rejected"
)

// TriggerMessageStatus is returned in TriggerMessage.conf.
type TriggerMessageStatus string

const (
	TriggerMessageAccepted       TriggerMessageStatus = "Accepted"
	TriggerMessageRejected       TriggerMessageStatus = "Rejected"
	TriggerMessageNotImplemented TriggerMessageStatus = "NotImplemented"
)

// UnitOfMeasure is the unit of a sampled value. The default unit is Wh.
type UnitOfMeasure string

const (
	UnitWh         UnitOfMeasure = "Wh"
	UnitKWh        UnitOfMeasure = "kWh"
	UnitVarh       UnitOfMeasure = "varh"
	UnitKvarh      UnitOfMeasure = "kvarh"
	UnitW          UnitOfMeasure = "W"
	UnitKW         UnitOfMeasure = "kW"
	UnitVA         UnitOfMeasure = "VA"
	UnitKVA        UnitOfMeasure = "kVA"
	UnitVar        UnitOfMeasure = "var"
	UnitKvar       UnitOfMeasure = "kvar"
	UnitA          UnitOfMeasure = "A"
	UnitV          UnitOfMeasure = "V"
	UnitCelsius    UnitOfMeasure = "Celsius"
	UnitFahrenheit UnitOfMeasure = "Fahrenheit"
	UnitK          UnitOfMeasure = "K"
	UnitPercent    UnitOfMeasure = "Percent"
	UnitHertz      UnitOfMeasure = "Hertz"
)

// UnlockStatus is returned in UnlockConnector.conf.
type UnlockStatus string

const (
	UnlockUnlocked     UnlockStatus = "Unlocked"
	UnlockFailed       UnlockStatus = "UnlockFailed"
	UnlockNotSupported UnlockStatus = "NotSupported"
)

// UpdateType is the kind of update carried by SendLocalList.req.
type UpdateType string

const (
	UpdateDifferential UpdateType = "Differential"
	UpdateFull         UpdateType = "Full"
)

// UpdateStatus is returned in SendLocalList.conf.
type UpdateStatus string

const (
	UpdateStatusAccepted        UpdateStatus = "Accepted"
	UpdateStatusFailed          UpdateStatus = "Failed"
	UpdateStatusNotSupported    UpdateStatus = "NotSupported"
	UpdateStatusVersionMismatch UpdateStatus = "VersionMismatch"
)

// ValueFormat tells how the value string of a sampled value is encoded.
type ValueFormat string

const (
	FormatRaw        ValueFormat = "Raw"
	FormatSignedData ValueFormat = "SignedData"
)
