// Raksha Relay - Real-Time Vehicle Safety Alert Ingestion and Broadcasting
// Copyright 2026 Raksha Networks
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/raksha-net/relay

package alert

import "fmt"

// Message formats the human-readable alert text for a language. It is a
// pure function of {language, location, vehicle_id, reason}; the template
// table is data and can be externalized without touching callers.
// Unsupported languages fall back to English.
func Message(lang, location, vehicleID, reason string) string {
	switch lang {
	case "hi":
		return fmt.Sprintf("🚨 संकट का पता चला! %s — वाहन %s में। स्थान: %s। सुझाव: पुलिस को कॉल करें और परिवार को सूचित करें।",
			reasonText("hi", reason), vehicleID, location)
	case "kn":
		return fmt.Sprintf("🚨 ಅಪಾಯ ಪತ್ತೆಯಾಗಿದೆ! %s — ವಾಹನ %s. ಸ್ಥಳ: %s. ಸಲಹೆ: ಪೊಲೀಸರಿಗೆ ಕರೆ ಮಾಡಿ ಮತ್ತು ಕುಟುಂಬಕ್ಕೆ ತಿಳಿಸಿ.",
			reasonText("kn", reason), vehicleID, location)
	default:
		return fmt.Sprintf("🚨 Distress Detected! %s in %s. Location: %s. Suggested Action: Call police & notify family.",
			reasonText("en", reason), vehicleID, location)
	}
}

// reasonText renders the event reason per language.
func reasonText(lang, reason string) string {
	switch lang {
	case "hi":
		switch reason {
		case ReasonPanic:
			return "यात्री ने पैनिक बटन दबाया"
		default:
			return "असामान्य गतिविधि: " + reason
		}
	case "kn":
		switch reason {
		case ReasonPanic:
			return "ಪ್ರಯಾಣಿಕರು ಪ್ಯಾನಿಕ್ ಬಟನ್ ಒತ್ತಿದ್ದಾರೆ"
		default:
			return "ಅಸಹಜ ಚಟುವಟಿಕೆ: " + reason
		}
	default:
		switch reason {
		case ReasonPanic:
			return "Passenger triggered panic"
		default:
			return "Anomaly reported: " + reason
		}
	}
}

// ReasonPanic is the reason token for panic-button events; anomaly events
// pass their anomaly type as the reason.
const ReasonPanic = "panic"
