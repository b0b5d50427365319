// Package widgets provides the built-in widgets: layout containers (Row,
// Column, Container, Scrollable, Table, KeyedColumn), display widgets (Text,
// Space), input widgets (Button, MouseArea, ComboBox), and overlay widgets
// (Tooltip, Modal).
//
// # Widget Construction
//
// Widgets are generic over the message type they publish and follow a
// two-tier construction pattern.
//
// ## Tier 1: Struct Literal (canonical, full control)
//
//	col := widgets.Column[Msg]{
//	    Items:   []core.Widget[Msg]{title, body},
//	    Spacing: 8,
//	    Width:   layout.Fill,
//	}
//
// ## Tier 2: XxxOf Helpers
//
//	col := widgets.ColumnOf[Msg](title, body).WithSpacing(8)
//	btn := widgets.ButtonOf(widgets.TextOf[Msg]("+")).WithOnPress(Increment)
//
// WithX methods return copies; they never mutate the receiver.
//
// # Events
//
// Containers deliver every event to their children before reacting
// themselves, and only claim events that are not yet captured.
package widgets
