package project

import "sort"

// SoftwareCatalog lists the engineering tools a project can be tagged with.
var SoftwareCatalog = func() []string {
	list := []string{
		// General / Math / Programming
		"MATLAB/Simulink", "Python", "LabVIEW", "Mathematica", "Maple", "R Studio", "Octave", "Scilab", "Excel/VBA",
		// CAD & 3D Modeling
		"SolidWorks", "AutoCAD", "Fusion 360", "CATIA", "Autodesk Inventor", "Siemens NX", "Creo Parametric", "Rhino 3D", "SketchUp", "FreeCAD", "Blender", "Onshape", "Solid Edge",
		// Simulation / FEA / CFD
		"Ansys Fluent", "Ansys Mechanical", "COMSOL Multiphysics", "Abaqus", "OpenFOAM", "SimScale", "Altair HyperWorks", "LS-DYNA", "Star-CCM+", "Autodesk CFD",
		// Electronics / PCB / Circuit Design
		"Altium Designer", "KiCad", "Eagle", "Proteus", "LTspice", "Multisim", "PSpice", "Cadence Virtuoso", "Synopsys", "Fritzing", "TinkerCAD",
		// FPGA / Embedded
		"Xilinx Vivado", "Quartus Prime", "Arduino IDE", "Keil µVision", "MPLAB X", "PlatformIO",
		// Civil / Structural / BIM
		"Revit", "SAP2000", "ETABS", "STAAD.Pro", "Civil 3D", "Tekla Structures",
		// Chemical / Process
		"Aspen Plus", "Aspen HYSYS", "DWSIM", "ChemCAD",
		// Robotics & Control
		"ROS (Robot Operating System)", "Gazebo", "Webots", "CoppeliaSim",

		"Other / Custom",
	}
	sort.Strings(list)
	return list
}()
