package domain

// PlantStatus is the closed set of plant operating states.
type PlantStatus string

const (
	PlantActive   PlantStatus = "active"
	PlantAlarm    PlantStatus = "alarm"
	PlantInactive PlantStatus = "inactive"
)

// InverterStatus is the closed set of inverter states.
type InverterStatus string

const (
	InverterOnline  InverterStatus = "online"
	InverterOffline InverterStatus = "offline"
	InverterWarning InverterStatus = "warning"
)

// AlertSeverity is the closed set of alert severities.
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
	SeverityInfo     AlertSeverity = "info"
)

// Display bundles the label and badge color for one status value.
// Labels are the pt-BR strings shown by the interface. This is the
// single mapping for every view; there are no per-view switch tables.
type Display struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var plantStatusDisplay = map[PlantStatus]Display{
	PlantActive:   {Label: "Ativa", Color: "green"},
	PlantAlarm:    {Label: "Alarme", Color: "yellow"},
	PlantInactive: {Label: "Inativa", Color: "red"},
}

var inverterStatusDisplay = map[InverterStatus]Display{
	InverterOnline:  {Label: "Online", Color: "green"},
	InverterOffline: {Label: "Offline", Color: "red"},
	InverterWarning: {Label: "Aviso", Color: "yellow"},
}

var severityDisplay = map[AlertSeverity]Display{
	SeverityWarning:  {Label: "Aviso", Color: "yellow"},
	SeverityCritical: {Label: "Crítico", Color: "red"},
	SeverityInfo:     {Label: "Info", Color: "blue"},
}

var unknownDisplay = Display{Label: "", Color: "gray"}

func (s PlantStatus) Valid() bool {
	_, ok := plantStatusDisplay[s]
	return ok
}

// Display returns the label/color pair for s. Unknown values map to a
// gray badge labeled with the raw value, as the source views did.
func (s PlantStatus) Display() Display {
	if d, ok := plantStatusDisplay[s]; ok {
		return d
	}
	d := unknownDisplay
	d.Label = string(s)
	return d
}

func (s InverterStatus) Valid() bool {
	_, ok := inverterStatusDisplay[s]
	return ok
}

func (s InverterStatus) Display() Display {
	if d, ok := inverterStatusDisplay[s]; ok {
		return d
	}
	d := unknownDisplay
	d.Label = string(s)
	return d
}

func (s AlertSeverity) Valid() bool {
	_, ok := severityDisplay[s]
	return ok
}

func (s AlertSeverity) Display() Display {
	if d, ok := severityDisplay[s]; ok {
		return d
	}
	d := unknownDisplay
	d.Label = string(s)
	return d
}
