package vsop87d

import "github.com/litescript/vsop87"

// VSOP87D series for Saturn, truncated to the leading published terms.
var saturnModel = vsop87.Model{
	L: [6]terms{
		{ // L0
			{Amp: 0.87401354025, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.11107659762, Phase: 3.96205090159, Freq: 213.29909543800},
			{Amp: 0.01414150957, Phase: 4.58581516874, Freq: 7.11354700080},
			{Amp: 0.00398379389, Phase: 0.52112032699, Freq: 206.18554843720},
			{Amp: 0.00350769243, Phase: 3.30329907896, Freq: 426.59819087600},
			{Amp: 0.00206816305, Phase: 0.24658372002, Freq: 103.09277421860},
			{Amp: 0.00079271300, Phase: 3.84007056878, Freq: 220.41264243880},
			{Amp: 0.00023990355, Phase: 4.66976924553, Freq: 110.20632121940},
			{Amp: 0.00016573588, Phase: 0.43719228296, Freq: 419.48464387520},
			{Amp: 0.00015820290, Phase: 0.93809155235, Freq: 632.78373931320},
			{Amp: 0.00015053543, Phase: 2.71669915667, Freq: 639.89728631400},
			{Amp: 0.00014906995, Phase: 5.76903183869, Freq: 316.39186965660},
			{Amp: 0.00014609559, Phase: 1.56518472000, Freq: 3.93215326310},
			{Amp: 0.00013160301, Phase: 4.44891291899, Freq: 14.22709400160},
			{Amp: 0.00013005299, Phase: 5.98119023644, Freq: 11.04570026390},
			{Amp: 0.00010725067, Phase: 3.12939523827, Freq: 202.25339517410},
			{Amp: 0.00006126317, Phase: 1.76328667907, Freq: 277.03499374140},
			{Amp: 0.00005863206, Phase: 0.23656938524, Freq: 529.69096509460},
			{Amp: 0.00005227757, Phase: 4.20783365759, Freq: 3.18139373770},
			{Amp: 0.00005019687, Phase: 3.17787728405, Freq: 433.71173787680},
			{Amp: 0.00004592550, Phase: 0.61977744975, Freq: 199.07200143640},
			{Amp: 0.00004005867, Phase: 2.24479718502, Freq: 63.73589830340},
			{Amp: 0.00003873670, Phase: 3.22283226966, Freq: 138.51749687070},
			{Amp: 0.00003269484, Phase: 0.77492638211, Freq: 949.17560896980},
			{Amp: 0.00002953796, Phase: 0.98280366998, Freq: 95.97922721780},
			{Amp: 0.00002461186, Phase: 2.03163875071, Freq: 735.87651353180},
			{Amp: 0.00001758145, Phase: 3.26580109940, Freq: 522.57741809380},
			{Amp: 0.00001640172, Phase: 5.50504453050, Freq: 846.08283475120},
			{Amp: 0.00001580648, Phase: 4.37265307169, Freq: 309.27832265580},
			{Amp: 0.00001391327, Phase: 4.02333150505, Freq: 323.50541665740},
			{Amp: 0.00001123498, Phase: 2.83726798446, Freq: 415.55249061210},
			{Amp: 0.00001017275, Phase: 3.71700135395, Freq: 227.52618943960},
			{Amp: 0.00000848642, Phase: 3.19150170830, Freq: 209.36694217490},
		},
		{ // L1
			{Amp: 213.54295596000, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.01297370862, Phase: 1.82834923978, Freq: 213.29909543800},
			{Amp: 0.00564345393, Phase: 2.88499717272, Freq: 7.11354700080},
			{Amp: 0.00107674962, Phase: 2.27769131009, Freq: 206.18554843720},
			{Amp: 0.00093734369, Phase: 1.06311793502, Freq: 426.59819087600},
			{Amp: 0.00040244455, Phase: 2.04108104671, Freq: 220.41264243880},
			{Amp: 0.00019941774, Phase: 1.27954390470, Freq: 103.09277421860},
			{Amp: 0.00010511678, Phase: 2.74880342130, Freq: 14.22709400160},
			{Amp: 0.00006416106, Phase: 0.38238295041, Freq: 639.89728631400},
			{Amp: 0.00004848994, Phase: 2.43037610229, Freq: 419.48464387520},
			{Amp: 0.00004056892, Phase: 2.92133209468, Freq: 110.20632121940},
			{Amp: 0.00003768635, Phase: 3.64965330780, Freq: 3.93215326310},
		},
		{ // L2
			{Amp: 0.00116441330, Phase: 1.17988132879, Freq: 7.11354700080},
			{Amp: 0.00091841837, Phase: 0.07325195840, Freq: 213.29909543800},
			{Amp: 0.00036661728, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00015274496, Phase: 4.06493179167, Freq: 206.18554843720},
			{Amp: 0.00010987259, Phase: 5.44282869191, Freq: 426.59819087600},
			{Amp: 0.00006337275, Phase: 6.01315330412, Freq: 220.41264243880},
			{Amp: 0.00003096551, Phase: 5.14261143990, Freq: 639.89728631400},
			{Amp: 0.00002127828, Phase: 0.49112075013, Freq: 103.09277421860},
			{Amp: 0.00001387238, Phase: 1.43270522924, Freq: 419.48464387520},
			{Amp: 0.00000980816, Phase: 2.79797870046, Freq: 14.22709400160},
		},
		{ // L3
			{Amp: 0.00016038585, Phase: 5.73945409679, Freq: 7.11354700080},
			{Amp: 0.00004249924, Phase: 4.58539675603, Freq: 213.29909543800},
			{Amp: 0.00001906521, Phase: 4.76082050205, Freq: 220.41264243880},
			{Amp: 0.00001465666, Phase: 5.91326678323, Freq: 206.18554843720},
			{Amp: 0.00001162206, Phase: 5.61973132428, Freq: 426.59819087600},
			{Amp: 0.00001066798, Phase: 3.60816533273, Freq: 639.89728631400},
			{Amp: 0.00000239282, Phase: 3.86088273372, Freq: 0.00000000000},
		},
		{ // L4
			{Amp: 0.00001661876, Phase: 3.99827253389, Freq: 7.11354700080},
			{Amp: 0.00000256863, Phase: 2.98436497838, Freq: 220.41264243880},
			{Amp: 0.00000236337, Phase: 3.90243599442, Freq: 213.29909543800},
			{Amp: 0.00000149326, Phase: 2.74110824208, Freq: 206.18554843720},
			{Amp: 0.00000114013, Phase: 3.14159265359, Freq: 0.00000000000},
		},
		{ // L5
			{Amp: 0.00000123624, Phase: 2.25906558780, Freq: 7.11354700080},
			{Amp: 0.00000034172, Phase: 2.16251654086, Freq: 14.22709400160},
			{Amp: 0.00000027567, Phase: 1.19867364110, Freq: 220.41264243880},
		},
	},
	B: [6]terms{
		{ // B0
			{Amp: 0.04330678039, Phase: 3.60284428399, Freq: 213.29909543800},
			{Amp: 0.00240348302, Phase: 2.85238489373, Freq: 426.59819087600},
			{Amp: 0.00084745939, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00034116062, Phase: 0.57297307557, Freq: 206.18554843720},
			{Amp: 0.00030863357, Phase: 3.48441504555, Freq: 220.41264243880},
			{Amp: 0.00014734070, Phase: 2.11846596715, Freq: 639.89728631400},
			{Amp: 0.00009916667, Phase: 5.79003188904, Freq: 419.48464387520},
			{Amp: 0.00006993564, Phase: 4.73604689720, Freq: 7.11354700080},
			{Amp: 0.00004807588, Phase: 5.43305312061, Freq: 316.39186965660},
		},
		{ // B1
			{Amp: 0.00397554998, Phase: 5.33289992556, Freq: 213.29909543800},
			{Amp: 0.00049478941, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00018571966, Phase: 6.09919206316, Freq: 426.59819087600},
			{Amp: 0.00014800587, Phase: 2.30586041400, Freq: 206.18554843720},
			{Amp: 0.00009643870, Phase: 1.69674660120, Freq: 220.41264243880},
			{Amp: 0.00003757161, Phase: 1.25429514018, Freq: 419.48464387520},
			{Amp: 0.00002717320, Phase: 5.91166664787, Freq: 639.89728631400},
		},
		{ // B2
			{Amp: 0.00020629977, Phase: 0.50482422817, Freq: 213.29909543800},
			{Amp: 0.00003719567, Phase: 3.99833475829, Freq: 206.18554843720},
			{Amp: 0.00001627158, Phase: 6.18189938133, Freq: 220.41264243880},
			{Amp: 0.00001346152, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000705842, Phase: 3.34519139914, Freq: 426.59819087600},
			{Amp: 0.00000365282, Phase: 5.09928680706, Freq: 639.89728631400},
		},
		{ // B3
			{Amp: 0.00000666252, Phase: 1.99004327355, Freq: 213.29909543800},
			{Amp: 0.00000632427, Phase: 5.69778316807, Freq: 206.18554843720},
			{Amp: 0.00000398050, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.00000188318, Phase: 4.33779804809, Freq: 220.41264243880},
			{Amp: 0.00000091684, Phase: 4.84104208217, Freq: 426.59819087600},
		},
		{ // B4
			{Amp: 0.00000080384, Phase: 1.11918414679, Freq: 220.41264243880},
			{Amp: 0.00000075130, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00000066993, Phase: 0.29288018382, Freq: 213.29909543800},
		},
		{ // B5
			{Amp: 0.00000005762, Phase: 2.32697937553, Freq: 220.41264243880},
		},
	},
	R: [6]terms{
		{ // R0
			{Amp: 9.55758135486, Phase: 0.00000000000, Freq: 0.00000000000},
			{Amp: 0.52921382865, Phase: 2.39226219573, Freq: 213.29909543800},
			{Amp: 0.01873679867, Phase: 5.23549604660, Freq: 206.18554843720},
			{Amp: 0.01464663929, Phase: 1.64763042902, Freq: 426.59819087600},
			{Amp: 0.00821891141, Phase: 5.93520042303, Freq: 316.39186965660},
			{Amp: 0.00547506923, Phase: 5.01532618980, Freq: 103.09277421860},
			{Amp: 0.00371684650, Phase: 2.27114821115, Freq: 220.41264243880},
			{Amp: 0.00361778765, Phase: 3.13904301847, Freq: 7.11354700080},
			{Amp: 0.00140617506, Phase: 5.70406606781, Freq: 632.78373931320},
			{Amp: 0.00108974848, Phase: 3.29313390175, Freq: 110.20632121940},
			{Amp: 0.00069006962, Phase: 5.94099540992, Freq: 419.48464387520},
			{Amp: 0.00061053367, Phase: 0.94037691801, Freq: 639.89728631400},
			{Amp: 0.00048913294, Phase: 1.55733638681, Freq: 202.25339517410},
			{Amp: 0.00034143772, Phase: 0.19519102597, Freq: 277.03499374140},
			{Amp: 0.00032401773, Phase: 5.47084567016, Freq: 949.17560896980},
			{Amp: 0.00020936596, Phase: 0.46349251129, Freq: 735.87651353180},
			{Amp: 0.00020839300, Phase: 1.52102476129, Freq: 433.71173787680},
			{Amp: 0.00014545705, Phase: 1.53478689696, Freq: 529.69096509460},
			{Amp: 0.00011993338, Phase: 5.98050967385, Freq: 846.08283475120},
			{Amp: 0.00009796004, Phase: 5.20475863996, Freq: 1265.56747862640},
			{Amp: 0.00009664259, Phase: 2.31494543914, Freq: 14.22709400160},
		},
		{ // R1
			{Amp: 0.06182981340, Phase: 0.25843511480, Freq: 213.29909543800},
			{Amp: 0.00506577242, Phase: 0.71114625261, Freq: 206.18554843720},
			{Amp: 0.00341394029, Phase: 5.79635741658, Freq: 426.59819087600},
			{Amp: 0.00188491195, Phase: 0.47215589652, Freq: 220.41264243880},
			{Amp: 0.00186261486, Phase: 3.14159265359, Freq: 0.00000000000},
			{Amp: 0.00143891146, Phase: 1.40744822888, Freq: 7.11354700080},
			{Amp: 0.00048617020, Phase: 5.07704941677, Freq: 639.89728631400},
			{Amp: 0.00020928188, Phase: 0.66327898074, Freq: 103.09277421860},
			{Amp: 0.00019952961, Phase: 1.17560125007, Freq: 419.48464387520},
			{Amp: 0.00018839909, Phase: 1.60819563172, Freq: 110.20632121940},
		},
		{ // R2
			{Amp: 0.00436902572, Phase: 4.78671677509, Freq: 213.29909543800},
			{Amp: 0.00071922498, Phase: 2.50070810200, Freq: 206.18554843720},
			{Amp: 0.00049766872, Phase: 4.97168150870, Freq: 220.41264243880},
			{Amp: 0.00043220783, Phase: 3.86940443794, Freq: 426.59819087600},
			{Amp: 0.00029645766, Phase: 5.96310264289, Freq: 7.11354700080},
			{Amp: 0.00004720822, Phase: 2.47527992245, Freq: 639.89728631400},
			{Amp: 0.00004141687, Phase: 4.10670940823, Freq: 433.71173787680},
		},
		{ // R3
			{Amp: 0.00020315005, Phase: 3.02186626038, Freq: 213.29909543800},
			{Amp: 0.00008923581, Phase: 3.19144205755, Freq: 220.41264243880},
			{Amp: 0.00006908677, Phase: 4.35174889353, Freq: 206.18554843720},
			{Amp: 0.00004087129, Phase: 4.22406927447, Freq: 7.11354700080},
			{Amp: 0.00003879424, Phase: 2.01056445995, Freq: 426.59819087600},
			{Amp: 0.00001070614, Phase: 4.20360341236, Freq: 639.89728631400},
		},
		{ // R4
			{Amp: 0.00001202050, Phase: 1.41499446465, Freq: 220.41264243880},
			{Amp: 0.00000707796, Phase: 1.16153570102, Freq: 213.29909543800},
			{Amp: 0.00000516121, Phase: 6.23973568693, Freq: 206.18554843720},
			{Amp: 0.00000426664, Phase: 0.45652916559, Freq: 7.11354700080},
			{Amp: 0.00000267736, Phase: 5.00746944252, Freq: 426.59819087600},
		},
	},
}
